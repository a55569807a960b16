package services

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicrm/internal/models/request_models"
	"clinicrm/pkg/utils"
)

func TestResolveLanguageCode(t *testing.T) {
	tests := []struct {
		name           string
		explicit       string
		acceptLanguage string
		want           string
	}{
		{"explicit wins", "TR", "en-US,en;q=0.9", "tr"},
		{"accept language primary tag", "", "en-US,en;q=0.9", "en"},
		{"accept language with quality", "", "de;q=0.8, en;q=0.7", "de"},
		{"fallback", "", "", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveLanguageCode(tt.explicit, tt.acceptLanguage, "en"))
		})
	}
}

func TestCreateTranslation_UnknownLanguage(t *testing.T) {
	svc := NewTranslationService(newFakeTranslationRepo(), "en")

	err := svc.CreateTranslation(context.Background(), request_models.CreateTranslationRequest{
		LanguageCode: "xx",
		Key:          "greeting",
		Value:        "hello",
	})
	assert.ErrorContains(t, err, "language not found")
}

func TestCreateLanguage_DuplicateCode(t *testing.T) {
	repo := newFakeTranslationRepo()
	svc := NewTranslationService(repo, "en")

	require.NoError(t, svc.CreateLanguage(context.Background(), request_models.CreateLanguageRequest{
		Code: "tr", Name: "Türkçe",
	}))

	repo.insertErr = &pq.Error{
		Code:       "23505",
		Constraint: "idx_languages_code",
		Detail:     "Key (code)=(tr) already exists.",
	}

	err := svc.CreateLanguage(context.Background(), request_models.CreateLanguageRequest{
		Code: "tr", Name: "Türkçe",
	})

	var ce *utils.ConstraintError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, utils.CodeDuplicateEntry, ce.Code)
	assert.Equal(t, "code", ce.Field)
	assert.Equal(t, "tr", ce.Value)
}

func TestGetTranslations(t *testing.T) {
	repo := newFakeTranslationRepo()
	svc := NewTranslationService(repo, "en")

	require.NoError(t, svc.CreateLanguage(context.Background(), request_models.CreateLanguageRequest{
		Code: "tr", Name: "Türkçe",
	}))
	require.NoError(t, svc.CreateTranslation(context.Background(), request_models.CreateTranslationRequest{
		LanguageCode: "tr", Key: "greeting", Value: "merhaba",
	}))

	out, err := svc.GetTranslations(context.Background(), "", "tr-TR,tr;q=0.9")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"greeting": "merhaba"}, out)
}
