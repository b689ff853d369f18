package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateUnifiedDiff_IdenticalContent(t *testing.T) {
	t.Parallel()

	content := []byte("--color-blue-50: #EEF6FF;\n--color-blue-100: #CBE4FF;\n")
	require.Empty(t, GenerateUnifiedDiff(content, content, "expected", "actual"))
}

func TestGenerateUnifiedDiff_SingleLineChange(t *testing.T) {
	t.Parallel()

	expected := []byte(":root {\n  --color-blue-50: #EEF6FF;\n}\n")
	actual := []byte(":root {\n  --color-blue-50: #FFFFFF;\n}\n")

	result := GenerateUnifiedDiff(expected, actual, "tokens.css (generated)", "tokens.css (on disk)")
	require.Contains(t, result, "--- tokens.css (generated)\n")
	require.Contains(t, result, "+++ tokens.css (on disk)\n")
	require.Contains(t, result, "@@ -1,3 +1,3 @@\n")
	require.Contains(t, result, "\n :root {\n")
	require.Contains(t, result, "\n-  --color-blue-50: #EEF6FF;\n")
	require.Contains(t, result, "\n+  --color-blue-50: #FFFFFF;\n")
	require.Contains(t, result, "\n }\n")

	added, removed := Stats(result)
	require.Equal(t, 1, added)
	require.Equal(t, 1, removed)
}

func TestGenerateUnifiedDiff_Truncation(t *testing.T) {
	t.Parallel()

	var expectedLines, actualLines []string
	for i := 0; i < 11000; i++ {
		expectedLines = append(expectedLines, "expected line")
		if i%2 == 0 {
			actualLines = append(actualLines, "actual line")
		} else {
			actualLines = append(actualLines, "expected line")
		}
	}

	result := GenerateUnifiedDiff([]byte(strings.Join(expectedLines, "\n")), []byte(strings.Join(actualLines, "\n")), "expected", "actual")
	require.Contains(t, result, "truncated")
	require.LessOrEqual(t, strings.Count(result, "\n"), 10001)
}

func TestGenerateUnifiedDiff_EmptyContent(t *testing.T) {
	t.Parallel()

	result := GenerateUnifiedDiff(nil, []byte("new content\n"), "expected", "actual")
	require.Contains(t, result, "@@ -1,0 +1,1 @@")
	require.Contains(t, result, "+new content\n")
}
