package latex

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAggregator(t *testing.T) *AggregatorDocument {
	t.Helper()
	a, err := ParseAggregator("MainFile.tex", AggregatorSkeleton(Preamble{Title: "Notes & Days", Author: "Sam"}))
	require.NoError(t, err)
	return a
}

func TestAggregatorSkeleton(t *testing.T) {
	out := string(AggregatorSkeleton(Preamble{Title: "Notes & Days", Author: "Sam", EmojiDir: "Emoji"}))
	assert.True(t, strings.HasPrefix(out, "\\documentclass[a4paper]{book}\n\\usepackage{lipsum}\n"))
	assert.Contains(t, out, `\usepackage[utf8]{inputenc}`)
	assert.Contains(t, out, `\newcommand{\emocode}{\includegraphics[height=1.8ex]{"./Emoji/code-smiley"}}`)
	assert.Contains(t, out, `\newcommand{\emoshutcalc}{\includegraphics[height=1.8ex]{"./Emoji/shutupandcalc"}}`)
	assert.Contains(t, out, `\title{\Huge Notes \& Days}`)
	assert.Contains(t, out, `\author{Sam}`)
	assert.True(t, strings.HasSuffix(out, "\\begin{document}\n\\maketitle\n\n\\end{document}\n"))
	assert.Equal(t, 7, strings.Count(out, `\includegraphics`))
}

func TestAggregatorAdd(t *testing.T) {
	a := newAggregator(t)
	march := Reference{Year: 2024, Month: time.March}

	added, err := a.Add(march)
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, strings.HasSuffix(string(a.Bytes()), "\\maketitle\n\n\\include{./2024/March_2024}\n\n\\end{document}\n"))

	added, err = a.Add(march)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, 1, strings.Count(string(a.Bytes()), "March_2024"))
}

func TestAggregatorAddKeepsChronologicalOrder(t *testing.T) {
	a := newAggregator(t)
	for _, r := range []Reference{
		{Year: 2024, Month: time.March},
		{Year: 2023, Month: time.December},
		{Year: 2024, Month: time.January},
		{Year: 2025, Month: time.February},
		{Year: 2024, Month: time.November},
	} {
		_, err := a.Add(r)
		require.NoError(t, err)
	}

	assert.Equal(t, []Reference{
		{Year: 2023, Month: time.December},
		{Year: 2024, Month: time.January},
		{Year: 2024, Month: time.March},
		{Year: 2024, Month: time.November},
		{Year: 2025, Month: time.February},
	}, a.References())

	again, err := ParseAggregator(a.Path, a.Bytes())
	require.NoError(t, err)
	assert.Equal(t, a.References(), again.References())
}

func TestAggregatorNeverMovesExistingReferences(t *testing.T) {
	in := `\begin{document}
\include{./2024/May_2024}
\include{2024/February_2024}
\include{./notes/extra}
\end{document}
`
	a, err := ParseAggregator("MainFile.tex", []byte(in))
	require.NoError(t, err)
	require.Len(t, a.References(), 2)
	assert.True(t, a.Has(Reference{Year: 2024, Month: time.February}))

	_, err = a.Add(Reference{Year: 2024, Month: time.April})
	require.NoError(t, err)
	assert.Equal(t, `\begin{document}
\include{./2024/April_2024}
\include{./2024/May_2024}
\include{2024/February_2024}
\include{./notes/extra}
\end{document}
`, string(a.Bytes()))
}

func TestAggregatorRejectsMalformed(t *testing.T) {
	for name, in := range map[string]string{
		"no end":       "\\begin{document}\n\\include{./2024/March_2024}\n",
		"two ends":     "\\end{document}\n\\end{document}\n",
		"after end":    "\\end{document}\n\\include{./2024/March_2024}\n",
		"bad month":    "\\include{./2024/Smarch_2024}\n\\end{document}\n",
		"year differs": "\\include{./2023/March_2024}\n\\end{document}\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseAggregator("MainFile.tex", []byte(in))
			assertContentFormat(t, err)
		})
	}
}

func TestReferenceNames(t *testing.T) {
	r := Reference{Year: 2024, Month: time.March}
	assert.Equal(t, "March_2024", r.Name())
	assert.Equal(t, "2024", r.Dir())
	assert.Equal(t, "./2024/March_2024", r.Target())

	got, ok := ParseReference("Sep_2023")
	require.True(t, ok)
	assert.Equal(t, Reference{Year: 2023, Month: time.September}, got)

	for _, bad := range []string{"March2024", "Smarch_2024", "March_24", "March_abcd"} {
		_, ok := ParseReference(bad)
		assert.False(t, ok, bad)
	}
}
