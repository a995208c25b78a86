package compiler

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type goldenCase struct {
	Name   string   `yaml:"name"`
	Source string   `yaml:"source"`
	Scheme []string `yaml:"scheme"`
	Prolog []string `yaml:"prolog"`
}

func loadGolden(t *testing.T) []goldenCase {
	t.Helper()
	data, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)

	var cases []goldenCase
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)
	return cases
}

func TestTranslateGolden(t *testing.T) {
	for _, tc := range loadGolden(t) {
		t.Run(tc.Name, func(t *testing.T) {
			scheme, err := Translate(tc.Source, Scheme, Options{})
			require.NoError(t, err)
			assert.Equal(t, tc.Scheme, scheme.Lines)

			prolog, err := Translate(tc.Source, Prolog, Options{})
			require.NoError(t, err)
			assert.Equal(t, tc.Prolog, prolog.Lines)

			// Strict mode accepts every golden program.
			_, err = Translate(tc.Source, Scheme, Options{Strict: true})
			assert.NoError(t, err)
		})
	}
}

// Both dialects advance one step per recognized input, process, and output
// op, so their line counts are fixed by the source alone.
func TestTranslateLineCounts(t *testing.T) {
	for _, tc := range loadGolden(t) {
		t.Run(tc.Name, func(t *testing.T) {
			res, err := Translate(tc.Source, Scheme, Options{})
			require.NoError(t, err)

			var inputs, procs, outputs int
			for _, c := range res.Constructs {
				switch c.(type) {
				case *InputOp:
					inputs++
				case *ProcessOp:
					procs++
				case *OutputOp:
					outputs++
				}
			}

			steps := inputs + procs + outputs
			assert.Len(t, res.Lines, steps+outputs-1, "scheme adds (newline) between outputs")

			prolog, err := Translate(tc.Source, Prolog, Options{})
			require.NoError(t, err)
			assert.Len(t, prolog.Lines, steps)
		})
	}
}

func TestTranslateIdempotent(t *testing.T) {
	for _, d := range []Dialect{Scheme, Prolog} {
		first, err := Compile(scenarioOne, d, Options{})
		require.NoError(t, err)
		second, err := Compile(scenarioOne, d, Options{})
		require.NoError(t, err)
		assert.Equal(t, first, second, d.String())
	}
}

func TestCompileScenarioOne(t *testing.T) {
	scheme, err := Compile(scenarioOne, Scheme, Options{})
	require.NoError(t, err)
	assert.Contains(t, scheme, `(read-csv "./file.csv" #t 1)`)
	assert.Contains(t, scheme, "(mean x)")
	assert.Contains(t, scheme, `(display "result:")`)
	assert.Contains(t, scheme, "(display m)")

	prolog, err := Compile(scenarioOne, Prolog, Options{})
	require.NoError(t, err)
	assert.Equal(t, "main :-\n"+
		"\tload_data_column('file.csv', true, 1, Vx),\n"+
		"\tmean(Vx, Vm),\n"+
		"\twriteln(\"result:\"),\n"+
		"\twriteln(Vm).\n", prolog)
}

func TestTranslateErrorsProduceNothing(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind error
	}{
		{"missing end", `data: x: number input: x = read("f.csv", true, 1) process: m = mean(x) output: m`, ErrSyntax},
		{"bad string", `data: x: number input: x = read("F.csv", true, 1) process: m = mean(x) output: m end.`, ErrLexical},
		{"uppercase identifier", `data: X: number input: X = read("f.csv", true, 1) process: m = mean(X) output: m end.`, ErrLexical},
		{"mean arity", `data: x: number input: x = read("f.csv", true, 1) process: m = mean(x, x) output: m end.`, ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, d := range []Dialect{Scheme, Prolog} {
				res, err := Translate(tt.src, d, Options{})
				assert.ErrorIs(t, err, tt.kind)
				assert.Nil(t, res)

				out, err := Compile(tt.src, d, Options{})
				assert.Error(t, err)
				assert.Empty(t, out)
			}
		})
	}
}

func TestTranslateStrict(t *testing.T) {
	undeclared := `data: x: vector input: x = read("f.csv", true, 1) process: m = mean(y) output: m end.`

	_, err := Translate(undeclared, Scheme, Options{})
	assert.NoError(t, err, "references are not checked by default")

	_, err = Translate(undeclared, Scheme, Options{Strict: true})
	assert.ErrorIs(t, err, ErrDeclaration)
	assert.EqualError(t, err, `declaration error: "y" is used in process but never declared`)
}
