package compiler

import "testing"

// complexSource exercises every section and every statistic function.
const complexSource = `data:
height: vector,
weight: vector,
age: vector
input:
height = read("people.csv", true, 2),
weight = read("people.csv", true, 3),
age = read("people.csv", true, 4)
process:
mh = mean(height),
sw = stddev(weight),
c = correlation(height, weight),
ra = regressiona(age, weight),
rb = regressionb(age, weight)
output:
"mean height =", mh,
"stddev weight =", sw,
"correlation =", c,
"intercept =", ra,
"slope =", rb
end.`

func BenchmarkLex(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Lex(complexSource); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	tokens, err := Lex(complexSource)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(tokens); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompile(b *testing.B) {
	for _, d := range []Dialect{Scheme, Prolog} {
		b.Run(d.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := Compile(complexSource, d, Options{}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
