// Package metaf parses METAR and TAF aviation weather reports into a
// sequence of typed groups plus per-report metadata. Parsing is a pure,
// reentrant function of the report text: there is no shared mutable state,
// no I/O, and no locale-sensitive formatting.
package metaf

import "strings"

// maxGroups bounds how many groups a single report may contain before it is
// rejected wholesale as ErrReportTooLarge.
const maxGroups = 100

// ParseResult is the outcome of Parse.
type ParseResult struct {
	Metadata ReportMetadata
	Groups   []Group
}

// ExtendedGroup additionally carries the report part a group was parsed
// under and its raw source substring.
type ExtendedGroup struct {
	Group Group
	Part  ReportPart
	Raw   string
}

// ExtendedParseResult is the outcome of ExtendedParse.
type ExtendedParseResult struct {
	Metadata ReportMetadata
	Groups   []ExtendedGroup
}

// Parse decodes a single METAR or TAF report.
func Parse(report string) ParseResult {
	meta, groups, _ := run(tokenize(report))
	return ParseResult{Metadata: meta, Groups: groups}
}

// ExtendedParse decodes a report the same way Parse does, additionally
// tagging each group with its ReportPart and raw source text.
func ExtendedParse(report string) ExtendedParseResult {
	meta, groups, parts := run(tokenize(report))
	eg := make([]ExtendedGroup, len(groups))
	for i, g := range groups {
		eg[i] = ExtendedGroup{Group: g, Part: parts[i], Raw: g.Raw()}
	}
	return ExtendedParseResult{Metadata: meta, Groups: eg}
}

// tokenize splits a report on whitespace runs, dropping empty tokens and
// truncating at the first token ending in "=" (the end-of-report sentinel).
func tokenize(report string) []string {
	fields := strings.FieldsFunc(report, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\r' || r == '\n'
	})
	var out []string
	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.HasSuffix(f, "=") {
			if stripped := strings.TrimSuffix(f, "="); stripped != "" {
				out = append(out, stripped)
			}
			break
		}
		out = append(out, f)
	}
	return out
}

// run drives the syntax state machine, dispatcher, and combiner over tokens,
// producing the final metadata, the accepted groups, and each accepted
// group's report part (parallel slices).
func run(tokens []string) (ReportMetadata, []Group, []ReportPart) {
	var meta ReportMetadata

	if len(tokens) > maxGroups {
		meta.Error = ErrReportTooLarge
		return meta, nil, nil
	}

	st := stateReportTypeOrLocation
	var groups []Group
	var parts []ReportPart

	for _, tok := range tokens {
		if st == stateError {
			break
		}

		part := partForState(st)
		g := dispatch(tok, part, &meta)
		class := g.Class()
		next := transition(st, class, &meta)

		if next == stateReportBodyBeginMetarRepeatParse {
			st = next
			part = partForState(st)
			g = dispatch(tok, part, &meta)
			class = g.Class()
			next = transition(st, class, &meta)
		}

		applyMetadata(&meta, g)

		if len(groups) == 0 {
			groups = append(groups, g)
			parts = append(parts, part)
		} else {
			last := groups[len(groups)-1]
			switch cr, merged := last.Combine(g); cr {
			case NotCombined:
				groups = append(groups, g)
				parts = append(parts, part)
			case Combined:
				groups[len(groups)-1] = merged
			case Invalidated:
				groups[len(groups)-1] = newPlainTextGroup(last.Raw())
				groups = append(groups, g)
				parts = append(parts, part)
			}
		}

		st = next
		if st == stateError {
			break
		}
	}

	if st != stateError {
		meta.Error = terminalError(st, meta.Error)
	}

	return meta, groups, parts
}
