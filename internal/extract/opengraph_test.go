package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractOpenGraph_AllTags(t *testing.T) {
	doc := docFromHTML(t, `<html><head>
<meta property="og:title" content="Backend Engineer">
<meta property="og:site_name" content="Hooli">
<meta property="og:description" content="Join the team.">
</head><body></body></html>`)

	got := extractOpenGraph(doc)
	assert.Equal(t, ConfidenceOpenGraph, got.Confidence)
	assert.Equal(t, "Backend Engineer", got.Role)
	assert.Equal(t, "Hooli", got.Company)
	assert.Equal(t, "Join the team.", got.Description)
}

func TestExtractOpenGraph_TwitterFallbackForRoleOnly(t *testing.T) {
	doc := docFromHTML(t, `<html><head>
<meta name="twitter:title" content="Data Engineer">
</head><body></body></html>`)

	got := extractOpenGraph(doc)
	assert.Equal(t, ConfidenceOpenGraph, got.Confidence)
	assert.Equal(t, "Data Engineer", got.Role)
	assert.Empty(t, got.Company)
}

func TestExtractOpenGraph_TwitterIgnoredWhenOGTitlePresent(t *testing.T) {
	doc := docFromHTML(t, `<html><head>
<meta property="og:title" content="OG Role">
<meta name="twitter:title" content="Twitter Role">
</head><body></body></html>`)

	got := extractOpenGraph(doc)
	assert.Equal(t, "OG Role", got.Role)
}

func TestExtractOpenGraph_NameAttributeAccepted(t *testing.T) {
	doc := docFromHTML(t, `<html><head>
<meta name="og:title" content="Via Name Attr">
</head><body></body></html>`)

	got := extractOpenGraph(doc)
	assert.Equal(t, "Via Name Attr", got.Role)
}

func TestExtractOpenGraph_DescriptionAloneIsNoSignal(t *testing.T) {
	doc := docFromHTML(t, `<html><head>
<meta property="og:description" content="Some page.">
</head><body></body></html>`)

	got := extractOpenGraph(doc)
	assert.Equal(t, ConfidenceNone, got.Confidence)
	assert.Equal(t, "Some page.", got.Description)
}

func TestExtractOpenGraph_Empty(t *testing.T) {
	doc := docFromHTML(t, `<html><head></head><body></body></html>`)

	got := extractOpenGraph(doc)
	assert.Equal(t, ConfidenceNone, got.Confidence)
}
