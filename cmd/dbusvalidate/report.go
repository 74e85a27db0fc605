package main

import (
	"cmp"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"

	dbusvalidate "github.com/TeamBitBean/dbusvalidate"
	"github.com/TeamBitBean/dbusvalidate/fragments"
	"github.com/creachadair/mds/heapq"
	"github.com/creachadair/mds/mapset"
	"github.com/creachadair/mds/slice"
)

// checkResult is the outcome of validating one batch-input line.
//
// The library never reports a cursor position for a rejected input
// (the validator returns only the first-detected reason), so a batch
// report orders failures by how structurally severe the reason is,
// not by where in the body it occurred.
type checkResult struct {
	line int
	sig  string
	v    dbusvalidate.Validity
	err  error // malformed batch-input line itself (bad hex, bad byte order)
}

// severity ranks a Validity by how fundamentally broken the input is:
// a bad grammar (signature or embedded signature) is worse than a
// body that was merely short or had one wrong byte.
func severity(v dbusvalidate.Validity) int {
	switch v {
	case dbusvalidate.Valid:
		return 0
	case dbusvalidate.SignatureTooLong, dbusvalidate.UnknownTypecode,
		dbusvalidate.MissingArrayElementType, dbusvalidate.StructStartedButNotEnded,
		dbusvalidate.StructEndedButNotStarted, dbusvalidate.StructHasNoFields,
		dbusvalidate.ExceededMaximumArrayRecursion, dbusvalidate.ExceededMaximumStructRecursion,
		dbusvalidate.BadSignature, dbusvalidate.VariantSignatureBad:
		return 3 // the schema itself is malformed
	case dbusvalidate.BadPath, dbusvalidate.BadUTF8InString,
		dbusvalidate.BooleanNotZeroOrOne, dbusvalidate.ArrayLengthIncorrect,
		dbusvalidate.VariantSignatureSpecifiesMultipleValues, dbusvalidate.VariantSignatureEmpty:
		return 2 // well-formed shape, bad content
	default:
		return 1 // truncated, padded wrong, or otherwise short
	}
}

func checkLine(line string) checkResult {
	fields := strings.SplitN(line, "\t", 3)
	if len(fields) != 3 {
		return checkResult{err: fmt.Errorf("want 3 tab-separated fields, got %d", len(fields))}
	}
	orderFlag, sig, hexBody := fields[0], fields[1], fields[2]

	order, ok := fragments.ByteOrderFromFlag(orderByte(orderFlag))
	if !ok {
		return checkResult{sig: sig, err: fmt.Errorf("unknown byte order %q", orderFlag)}
	}
	body, err := hex.DecodeString(strings.TrimSpace(hexBody))
	if err != nil {
		return checkResult{sig: sig, err: fmt.Errorf("decoding hex body: %w", err)}
	}

	if v := dbusvalidate.ValidateSignature([]byte(sig)); v != dbusvalidate.Valid {
		return checkResult{sig: sig, v: v}
	}
	v := dbusvalidate.ValidateBody([]byte(sig), order, body, nil)
	return checkResult{sig: sig, v: v}
}

func orderByte(s string) byte {
	if len(s) == 0 {
		return 'l'
	}
	return s[0]
}

// printReport prints a worst-first summary of a batch run: failures
// ranked by [severity], then a deduplicated list of every distinct
// [dbusvalidate.Validity] reason observed.
func printReport(results []checkResult) {
	for i := range results {
		results[i].line = i + 1
	}

	q := heapq.New(func(a, b checkResult) int {
		if d := cmp.Compare(severity(b.v), severity(a.v)); d != 0 {
			return d
		}
		return cmp.Compare(a.line, b.line)
	})

	reasons := mapset.New[dbusvalidate.Validity]()
	var okCount, errCount int
	for _, r := range results {
		if r.err != nil {
			errCount++
			fmt.Printf("  line %d: malformed input: %v\n", r.line, r.err)
			continue
		}
		if r.v.OK() {
			okCount++
			continue
		}
		reasons.Add(r.v)
		q.Add(r)
	}

	fmt.Printf("%d lines: %d valid, %d rejected, %d malformed input\n",
		len(results), okCount, q.Len(), errCount)

	for !q.IsEmpty() {
		r, _ := q.Pop()
		fmt.Printf("  line %d: %s: %s\n", r.line, r.sig, r.v)
	}

	if len(reasons) > 0 {
		all := make([]dbusvalidate.Validity, 0, len(reasons))
		for v := range reasons {
			all = append(all, v)
		}
		slices.Sort(all)

		schemaBad := slices.Collect(slice.Select(all, func(v dbusvalidate.Validity) bool {
			return severity(v) == 3
		}))

		names := make([]string, len(all))
		for i, v := range all {
			names[i] = v.String()
		}
		fmt.Println("distinct failure reasons:", strings.Join(names, ", "))
		if len(schemaBad) > 0 {
			schemaNames := make([]string, len(schemaBad))
			for i, v := range schemaBad {
				schemaNames[i] = v.String()
			}
			fmt.Println("  of which schema-level:", strings.Join(schemaNames, ", "))
		}
	}
}
