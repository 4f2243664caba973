package scale

import "sync"

// Score bounds of the long-term scale. Score 1 is AAA-equivalent; higher
// scores mean lower credit quality.
const (
	MinScore = 1
	MaxScore = 22
)

// WARF domain. MinWARF of every bucket is inclusive, MaxWARF exclusive,
// except that a WARF of exactly 10000 belongs to the last bucket.
const (
	MinWARF = 1.0
	MaxWARF = 10000.0
)

// ltGrade is one row of the long-term translation table: the per-agency
// symbols for a rating score, its WARF, and its WARF bucket.
type ltGrade struct {
	score   int
	warf    float64
	minWARF float64 // inclusive
	maxWARF float64 // exclusive
	symbols map[Agency]string
}

func row(score int, warf, minWARF, maxWARF float64, moody, sp, dbrs, bloomberg string) ltGrade {
	return ltGrade{
		score:   score,
		warf:    warf,
		minWARF: minWARF,
		maxWARF: maxWARF,
		symbols: map[Agency]string{
			Moody:     moody,
			SP:        sp,
			Fitch:     sp, // Fitch long-term symbols coincide with S&P's
			DBRS:      dbrs,
			Bloomberg: bloomberg,
		},
	}
}

// longTermGrades is the authoritative long-term table, ordered by score.
var longTermGrades = []ltGrade{
	row(1, 1, 1, 5, "Aaa", "AAA", "AAA", "AAA"),
	row(2, 10, 5, 15, "Aa1", "AA+", "AAH", "AA+"),
	row(3, 20, 15, 30, "Aa2", "AA", "AA", "AA"),
	row(4, 40, 30, 55, "Aa3", "AA-", "AAL", "AA-"),
	row(5, 70, 55, 95, "A1", "A+", "AH", "A+"),
	row(6, 120, 95, 150, "A2", "A", "A", "A"),
	row(7, 180, 150, 220, "A3", "A-", "AL", "A-"),
	row(8, 260, 220, 310, "Baa1", "BBB+", "BBBH", "BBB+"),
	row(9, 360, 310, 485, "Baa2", "BBB", "BBB", "BBB"),
	row(10, 610, 485, 775, "Baa3", "BBB-", "BBBL", "BBB-"),
	row(11, 940, 775, 1145, "Ba1", "BB+", "BBH", "BB+"),
	row(12, 1350, 1145, 1558, "Ba2", "BB", "BB", "BB"),
	row(13, 1766, 1558, 1993, "Ba3", "BB-", "BBL", "BB-"),
	row(14, 2220, 1993, 2470, "B1", "B+", "BH", "B+"),
	row(15, 2720, 2470, 3105, "B2", "B", "B", "B"),
	row(16, 3490, 3105, 4130, "B3", "B-", "BL", "B-"),
	row(17, 4770, 4130, 5635, "Caa1", "CCC+", "CCCH", "CCC+"),
	row(18, 6500, 5635, 7285, "Caa2", "CCC", "CCC", "CCC"),
	row(19, 8070, 7285, 9034, "Caa3", "CCC-", "CCCL", "CCC-"),
	row(20, 9998, 9034, 9998.5, "Ca", "CC", "CC", "CC"),
	row(21, 9999, 9998.5, 9999.5, "C", "C", "C", "C"),
	row(22, 10000, 9999.5, 10000, "D", "D", "D", "DDD"),
}

// longTermAliases maps one-way symbols accepted on input but never produced
// on output. "SD" (selective default) counts as defaulted.
var longTermAliases = map[string]int{
	"SD": 22,
}

// notRated marks symbols that mean "no rating assigned". They translate to
// missing, not to an unknown-symbol error.
var notRated = map[string]bool{
	"NR":  true,
	"WD":  true,
	"NA":  true,
	"N/A": true,
}

var (
	ltOnce        sync.Once
	scoreBySymbol map[Agency]map[string]int
	symbolByScore map[Agency]map[int]string
	warfByScore   map[int]float64
)

func ltInit() {
	ltOnce.Do(func() {
		scoreBySymbol = make(map[Agency]map[string]int)
		symbolByScore = make(map[Agency]map[int]string)
		warfByScore = make(map[int]float64, len(longTermGrades))
		for _, agency := range Agencies(LongTerm) {
			scoreBySymbol[agency] = make(map[string]int, len(longTermGrades))
			symbolByScore[agency] = make(map[int]string, len(longTermGrades))
		}
		for _, g := range longTermGrades {
			warfByScore[g.score] = g.warf
			for agency, symbol := range g.symbols {
				scoreBySymbol[agency][symbol] = g.score
				symbolByScore[agency][g.score] = symbol
			}
		}
	})
}

// LongTermScore returns the rating score for a long-term symbol.
func LongTermScore(agency Agency, symbol string) (int, bool) {
	ltInit()
	if score, ok := scoreBySymbol[agency][symbol]; ok {
		return score, true
	}
	if score, ok := longTermAliases[symbol]; ok {
		return score, true
	}
	return 0, false
}

// LongTermSymbol returns the agency's symbol for a rating score.
func LongTermSymbol(agency Agency, score int) (string, bool) {
	ltInit()
	symbol, ok := symbolByScore[agency][score]
	return symbol, ok
}

// WARFForScore returns the WARF associated with a rating score.
func WARFForScore(score int) (float64, bool) {
	ltInit()
	warf, ok := warfByScore[score]
	return warf, ok
}

// NotRated reports whether a symbol is a not-rated sentinel such as "NR" or
// "WD", which translates to missing rather than failing the lookup.
func NotRated(symbol string) bool {
	return notRated[symbol]
}

// ScoreForWARF locates the WARF bucket containing warf and returns its
// rating score. WARFs outside [1, 10000] are rejected.
func ScoreForWARF(warf float64) (int, error) {
	if warf < MinWARF || warf > MaxWARF {
		return 0, &OutOfRangeError{What: "WARF", Value: warf}
	}
	if warf == MaxWARF {
		return MaxScore, nil
	}
	for _, g := range longTermGrades {
		if warf >= g.minWARF && warf < g.maxWARF {
			return g.score, nil
		}
	}
	// Unreachable: the buckets partition [1, 10000).
	return 0, &OutOfRangeError{What: "WARF", Value: warf}
}

// SymbolForWARF returns the agency symbol for a WARF, clamping values
// outside [1, 10000] to the nearest boundary bucket.
func SymbolForWARF(agency Agency, warf float64) string {
	if warf < MinWARF {
		warf = MinWARF
	}
	if warf > MaxWARF {
		warf = MaxWARF
	}
	score, _ := ScoreForWARF(warf)
	symbol, _ := LongTermSymbol(agency, score)
	return symbol
}

// WARFBucket returns the [min, max) bucket boundaries containing warf.
func WARFBucket(warf float64) (minWARF, maxWARF float64, err error) {
	score, err := ScoreForWARF(warf)
	if err != nil {
		return 0, 0, err
	}
	g := longTermGrades[score-MinScore]
	return g.minWARF, g.maxWARF, nil
}
