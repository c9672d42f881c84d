package pipeline

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/lead-prioritizer/internal/industry"
	"github.com/sells-group/lead-prioritizer/internal/model"
	"github.com/sells-group/lead-prioritizer/internal/normalize"
)

func newTestPipeline(opts Options) *Pipeline {
	return New(normalize.DefaultTables(), industry.NewDetector(nil), opts)
}

func messyFrame() *model.Frame {
	return model.NewFrame(
		[]string{"Full Name", "Email Address", "Org", "Position", "Headcount"},
		[][]string{
			{"Jane Doe", "jane@techcorp.com", "TechCorp Inc", "Sales Mgr", "500"},
			{"", " ", "", "", ""},
			{"Bob", "bob@gmail.com", "", "Intern", "1"},
			{"Sam", "sam@startup.io", "Startup", "CEO", "Startup"},
		},
	)
}

func TestRun_FullBatch(t *testing.T) {
	t.Parallel()
	p := newTestPipeline(Options{Enrich: true, Explain: true})

	in := messyFrame()
	res, err := p.Run(context.Background(), in)
	require.NoError(t, err)
	require.True(t, res.Scored())

	_, err = uuid.Parse(res.RunID)
	assert.NoError(t, err)

	assert.Equal(t, 4, res.InputRows)
	assert.Equal(t, 1, res.DroppedRows)
	assert.Len(t, res.MappingLog, 5)
	assert.Equal(t, "Org", res.Mapping[model.FieldCompany])

	out := res.Frame
	require.Equal(t, 3, out.Len())
	assert.Equal(t, []string{"Jane Doe", "Sam", "Bob"}, out.Column(model.FieldName))
	assert.Equal(t, []string{"High", "Medium", "Low"}, out.Column(model.ColScore))
	assert.Equal(t, model.UnknownCompany, out.Value(2, model.FieldCompany))
	assert.Equal(t, "technology", out.Value(0, model.ColIndustry))
	assert.True(t, out.Has(model.ColScoreReasons))

	assert.Equal(t, map[model.Tier]int{model.TierHigh: 1, model.TierMedium: 1, model.TierLow: 1}, res.TierCounts)
	require.NotNil(t, res.Enrichment)
	assert.Equal(t, 3, res.Enrichment.Rows)

	names := make([]string, 0, len(res.Phases))
	for _, ph := range res.Phases {
		names = append(names, ph.Name)
		assert.Equal(t, PhaseComplete, ph.Status, ph.Name)
	}
	assert.Equal(t, []string{"map", "clean", "enrich", "score"}, names)

	// input untouched
	assert.Equal(t, "Full Name", in.Columns[0])
	assert.Equal(t, 4, in.Len())
}

func TestRun_MissingColumns(t *testing.T) {
	t.Parallel()
	p := newTestPipeline(Options{})

	in := model.NewFrame([]string{"Full Name", "Org", "Contact Size"}, [][]string{{"A", "B", "10"}})
	res, err := p.Run(context.Background(), in)
	require.NoError(t, err)

	assert.False(t, res.Scored())
	assert.Equal(t, []string{"email", "job_title"}, res.Missing)
	assert.Equal(t, []string{"name", "company", "company_size"}, res.Available)
	assert.Contains(t, res.Suggestions, "email")
	assert.Empty(t, res.TierCounts)
	require.NotNil(t, res.Frame)
	assert.False(t, res.Frame.Has(model.ColScore))
}

func TestRun_ManualMapping(t *testing.T) {
	t.Parallel()
	p := newTestPipeline(Options{ManualMapping: map[string]string{
		"name":         "Who",
		"company_size": "Band",
		"job_title":    "None",
		"email":        "Ghost",
	}})

	in := model.NewFrame(
		[]string{"Who", "email", "company", "job_title", "Band"},
		[][]string{{"Ann", "ann@acme.com", "Acme", "Director", "250"}},
	)
	res, err := p.Run(context.Background(), in)
	require.NoError(t, err)
	require.True(t, res.Scored())

	assert.Equal(t, "Who", res.Mapping[model.FieldName])
	assert.Equal(t, "Band", res.Mapping[model.FieldCompanySize])
	assert.Equal(t, "email", res.Mapping[model.FieldEmail])
	assert.Equal(t, []string{
		"Manual mapping: 'Who' → 'name'",
		"Manual mapping: 'Band' → 'company_size'",
	}, res.MappingLog)
	assert.Equal(t, "High", res.Frame.Value(0, model.ColScore))
}

func TestRun_EmptyBatch(t *testing.T) {
	t.Parallel()
	p := newTestPipeline(Options{Enrich: true})

	res, err := p.Run(context.Background(), model.NewFrame(model.CanonicalFields, nil))
	require.NoError(t, err)
	assert.True(t, res.Scored())
	assert.Equal(t, 0, res.Frame.Len())
	assert.True(t, res.Frame.Has(model.ColScore))
}

func TestRun_MLMode(t *testing.T) {
	t.Parallel()
	p := newTestPipeline(Options{Mode: "ml"})

	res, err := p.Run(context.Background(), messyFrame())
	require.NoError(t, err)
	assert.Equal(t, map[model.Tier]int{model.TierMedium: 3}, res.TierCounts)
}

func TestRun_EnrichSkipped(t *testing.T) {
	t.Parallel()
	p := newTestPipeline(Options{})

	res, err := p.Run(context.Background(), messyFrame())
	require.NoError(t, err)
	assert.Nil(t, res.Enrichment)
	assert.False(t, res.Frame.Has(model.ColIndustry))
	assert.False(t, res.Frame.Has(model.ColScorePoints))

	var enrichPhase *Phase
	for i := range res.Phases {
		if res.Phases[i].Name == "enrich" {
			enrichPhase = &res.Phases[i]
		}
	}
	require.NotNil(t, enrichPhase)
	assert.Equal(t, PhaseSkipped, enrichPhase.Status)
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()
	p := newTestPipeline(Options{})

	_, err := p.Run(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pipeline: nil frame")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Run(ctx, messyFrame())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pipeline: run cancelled")
}
