package processor

import (
	"fmt"
	"math"
	"strings"

	goeval "github.com/edisonguo/govaluate"

	"github.com/nci/sarprep/utils"
)

// DefaultNoDataPattern marks zero-valued phase samples as missing before
// averaging. Interferogram phase is exactly zero only where the
// processing chain wrote no observation.
const DefaultNoDataPattern = "v == 0"

// NoDataMask evaluates a boolean expression over the sample variable v to
// decide which samples of a band are treated as missing. The expression
// is parsed and validated once per job.
type NoDataMask struct {
	expr *goeval.EvaluableExpression
	text string
}

func ParseNoDataMask(pattern string) (*NoDataMask, error) {
	if len(strings.TrimSpace(pattern)) == 0 {
		pattern = DefaultNoDataPattern
	}

	expr, err := goeval.NewEvaluableExpression(pattern)
	if err != nil {
		return nil, fmt.Errorf("error parsing nodata pattern '%v': %v", pattern, err)
	}

	for _, token := range expr.Tokens() {
		if token.Kind == goeval.VARIABLE {
			varName, ok := token.Value.(string)
			if !ok {
				return nil, fmt.Errorf("variable token '%v' failed to cast string", token.Value)
			}
			if varName != "v" {
				return nil, fmt.Errorf("variable %v is not supported in nodata patterns. The only valid variable is v", varName)
			}
		}
	}

	return &NoDataMask{expr: expr, text: pattern}, nil
}

func (m *NoDataMask) String() string {
	return m.text
}

// Apply rewrites every sample matching the mask expression as NaN.
// Samples that are already NaN stay missing without evaluation.
func (m *NoDataMask) Apply(r *utils.Float64Raster) error {
	parameters := make(map[string]interface{}, 1)
	for i, v := range r.Data {
		if math.IsNaN(v) {
			continue
		}
		parameters["v"] = v
		result, err := m.expr.Evaluate(parameters)
		if err != nil {
			return fmt.Errorf("error evaluating nodata pattern '%v': %v", m.text, err)
		}
		masked, ok := result.(bool)
		if !ok {
			return fmt.Errorf("nodata pattern '%v' is not a boolean expression", m.text)
		}
		if masked {
			r.Data[i] = math.NaN()
		}
	}
	return nil
}
