package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/lead-prioritizer/internal/model"
)

func TestDetectContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []string
		want   ContentType
	}{
		{"emails", []string{"a@b.com", "c@d.org", ""}, ContentEmail},
		{"names", []string{"John Smith", "Jane Doe", "Bob"}, ContentName},
		{"companies", []string{"AcmeCorp", "GlobexLLC", "Initech"}, ContentCompany},
		{"titles", []string{"Manager", "Director", "Engineer"}, ContentJobTitle},
		{"sizes", []string{"10", "250", "5000"}, ContentCompanySize},
		{"text", []string{"foo", "bar", "baz"}, ContentText},
		{"blank", []string{"", "  "}, ContentEmpty},
		{"nil", nil, ContentEmpty},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DetectContentType(tt.values))
		})
	}
}

func TestContentTypeOf_MissingColumn(t *testing.T) {
	t.Parallel()

	f := model.NewFrame([]string{"email"}, [][]string{{"a@b.com"}})
	assert.Equal(t, ContentUnknown, ContentTypeOf(f, "nope"))
	assert.Equal(t, ContentEmail, ContentTypeOf(f, "email"))
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	f := model.NewFrame([]string{"email", "size"}, [][]string{
		{"a@b.com", "10"},
		{"a@b.com", ""},
		{"c@d.com", "20"},
	})
	infos := Describe(f)
	require.Len(t, infos, 2)

	assert.Equal(t, ColumnInfo{
		Name:        "email",
		NonEmpty:    3,
		Unique:      2,
		Samples:     []string{"a@b.com", "c@d.com"},
		ContentType: ContentEmail,
	}, infos[0])

	assert.Equal(t, 2, infos[1].NonEmpty)
	assert.Equal(t, 1, infos[1].Empty)
	assert.Equal(t, ContentCompanySize, infos[1].ContentType)
}
