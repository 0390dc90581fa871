// test/benchmarks/helpers.go
package benchmarks

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// manifestParser extracts delivery lines from plain-text manifests the way
// the seeder does, kept here so the parsing hot path can be benchmarked
// without real PDF fixtures.
type manifestParser struct {
	headerRe *regexp.Regexp
	footerRe *regexp.Regexp
	qtyRe    *regexp.Regexp
	fillerRe *regexp.Regexp
}

type manifestLine struct {
	PlantName string
	Quantity  int
}

func newManifestParser() *manifestParser {
	return &manifestParser{
		headerRe: regexp.MustCompile(`(?i)(PLANT.*QTY|DESCRIPTION.*QUANTITY)`),
		footerRe: regexp.MustCompile(`(?i)(TOTAL UNITS|DELIVERED BY|SIGNATURE)`),
		qtyRe:    regexp.MustCompile(`\b(\d{1,4})\s*$`),
		fillerRe: regexp.MustCompile(`[.\-]{3,}`),
	}
}

// ExtractLines parses manifest text into delivery lines. Lines before the
// header and after the footer are ignored.
func (p *manifestParser) ExtractLines(content string) []manifestLine {
	var lines []manifestLine
	inBody := false

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if !inBody {
			if p.headerRe.MatchString(line) {
				inBody = true
			}
			continue
		}
		if p.footerRe.MatchString(line) {
			break
		}

		match := p.qtyRe.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		qty, err := strconv.Atoi(match[1])
		if err != nil || qty <= 0 {
			continue
		}

		name := strings.TrimSpace(strings.TrimSuffix(line, match[0]))
		name = strings.TrimSpace(p.fillerRe.ReplaceAllString(name, " "))
		if name == "" {
			continue
		}

		lines = append(lines, manifestLine{PlantName: name, Quantity: qty})
	}

	return lines
}

// createManifestContent builds simulated manifest text for benchmarks
func createManifestContent(numLines int) string {
	var content strings.Builder

	content.WriteString("VERDEO PLANT SERVICES\n")
	content.WriteString("DELIVERY MANIFEST #4521\n")
	content.WriteString("PLANT NAME                    QTY\n")

	plantNames := []string{
		"Ficus Benjamina",
		"Monstera Deliciosa",
		"Kentia Palm",
		"Dracaena Marginata",
		"Areca Palm",
		"Snake Plant Laurentii",
		"ZZ Plant",
		"Philodendron Xanadu",
		"Spathiphyllum Sensation",
		"Rubber Plant Burgundy",
	}

	for i := 0; i < numLines; i++ {
		name := plantNames[i%len(plantNames)]
		content.WriteString(fmt.Sprintf("%s ........ %d\n", name, 1+i%12))
	}

	content.WriteString("TOTAL UNITS: many\n")
	content.WriteString("DELIVERED BY: J. Ortiz\n")

	return content.String()
}
