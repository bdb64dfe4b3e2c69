package pipeline_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lcintel/internal/domain"
	"lcintel/internal/pipeline"
)

func TestManagerCreateAndGet(t *testing.T) {
	m := pipeline.NewManager()

	s := m.Create()
	require.NotNil(t, s)
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Equal(t, domain.StateEmpty, s.State())

	got, err := m.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)
}

func TestManagerGetUnknown(t *testing.T) {
	m := pipeline.NewManager()
	_, err := m.Get(uuid.New())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestManagerDelete(t *testing.T) {
	m := pipeline.NewManager()
	s := m.Create()

	require.NoError(t, m.Delete(s.ID))
	_, err := m.Get(s.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	assert.ErrorIs(t, m.Delete(s.ID), domain.ErrSessionNotFound)
}

func TestManagerListOrdering(t *testing.T) {
	m := pipeline.NewManager()
	first := m.Create()
	second := m.Create()
	third := m.Create()

	list := m.List()
	require.Len(t, list, 3)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
	assert.Equal(t, third.ID, list[2].ID)
}

func TestSessionSupportingIsCopied(t *testing.T) {
	s := pipeline.NewSession()
	fields := map[string]string{"invoice_amount": "1000"}
	s.AddSupporting("commercial_invoice", fields)

	// Mutating the caller's map after the fact changes nothing.
	fields["invoice_amount"] = "9999"
	got := s.Supporting()
	assert.Equal(t, "1000", got["commercial_invoice"]["invoice_amount"])

	// Mutating the returned copy changes nothing either.
	got["commercial_invoice"]["invoice_amount"] = "5"
	assert.Equal(t, "1000", s.Supporting()["commercial_invoice"]["invoice_amount"])
}

func TestSessionDocument(t *testing.T) {
	s := pipeline.NewSession()
	data, ct := s.Document()
	assert.Empty(t, data)
	assert.Empty(t, ct)

	s.SetDocument([]byte("%PDF-1.4"), "application/pdf")
	data, ct = s.Document()
	assert.Equal(t, []byte("%PDF-1.4"), data)
	assert.Equal(t, "application/pdf", ct)
}
