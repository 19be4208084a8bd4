package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyFile(t *testing.T) {
	assert.Equal(t, FileImage, ClassifyFile("logo.PNG"))
	assert.Equal(t, FileImage, ClassifyFile("hero.webp"))
	assert.Equal(t, FileDocument, ClassifyFile("drhp-summary.pdf"))
	assert.Equal(t, FileDocument, ClassifyFile("notes.txt"))
	assert.Equal(t, FileOther, ClassifyFile("archive.zip"))
	assert.Equal(t, FileOther, ClassifyFile("README"))
}

func TestStatusValid(t *testing.T) {
	assert.True(t, ApplicationQualified.Valid())
	assert.False(t, ApplicationStatus("won").Valid())
	assert.True(t, ContactConverted.Valid())
	assert.False(t, ContactStatus("reviewing").Valid())
}

func TestContactRequest_EncodesMissingOptionalsAsNull(t *testing.T) {
	req := ContactRequest{
		Name:         "Asha",
		CompanyName:  "Asha Foods",
		MobileNumber: "9876543210",
		Email:        OptionalString(""),
		Message:      OptionalString("Planning an SME IPO"),
	}

	b, err := json.Marshal(req)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Contains(t, raw, "annual_turnover")
	assert.Nil(t, raw["annual_turnover"])
	assert.Nil(t, raw["email"])
	assert.Equal(t, "Planning an SME IPO", raw["message"])
}

func TestApplicationUpdate_OmitsUnsetFields(t *testing.T) {
	b, err := json.Marshal(ApplicationUpdate{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(b))

	status := ApplicationReviewing
	b, err = json.Marshal(ApplicationUpdate{Status: &status})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"reviewing"}`, string(b))
}

func TestBlogPost_Input(t *testing.T) {
	p := BlogPost{ID: "1", Slug: "sme-ipo", Title: "SME IPO", Content: "<p>x</p>", Category: "IPO Strategy", Date: "2026-01-01"}
	in := p.Input()
	assert.Equal(t, "sme-ipo", in.Slug)
	assert.Equal(t, "SME IPO", in.Title)
	assert.Equal(t, "IPO Strategy", in.Category)
}

func TestDeref(t *testing.T) {
	assert.Equal(t, "", Deref(nil))
	s := "x"
	assert.Equal(t, "x", Deref(&s))
}
