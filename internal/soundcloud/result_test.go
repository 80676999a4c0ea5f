package soundcloud

import (
	"testing"
	"time"
)

func TestResult(t *testing.T) {
	t.Run("String And Int", func(t *testing.T) {
		r := Result{"name": "x", "id": float64(12), "count": "7", "missing": nil}

		if r.String("name") != "x" {
			t.Errorf("expected x, got %s", r.String("name"))
		}
		if r.String("id") != "12" {
			t.Errorf("expected 12, got %s", r.String("id"))
		}
		if r.Int("count") != 7 {
			t.Errorf("expected 7, got %d", r.Int("count"))
		}
		if r.String("missing") != "" || r.Int("nope") != 0 {
			t.Error("expected zero values for absent keys")
		}
	})

	t.Run("Token", func(t *testing.T) {
		r := Result{"access_token": "abc", "scope": "non-expiring", "expires_in": float64(3600)}

		tok := r.Token()
		if tok == nil {
			t.Fatal("expected token")
		}
		if tok.AccessToken != "abc" {
			t.Errorf("expected access token abc, got %s", tok.AccessToken)
		}
		if tok.Extra("scope") != "non-expiring" {
			t.Errorf("expected scope extra, got %v", tok.Extra("scope"))
		}
		if tok.Expiry.Before(time.Now()) {
			t.Error("expected expiry in the future")
		}
	})

	t.Run("Token Without Expiry", func(t *testing.T) {
		tok := Result{"access_token": "abc"}.Token()
		if !tok.Expiry.IsZero() {
			t.Error("non-expiring token should have zero expiry")
		}
		if !tok.Valid() {
			t.Error("expected token to be valid")
		}
	})

	t.Run("Missing Access Token", func(t *testing.T) {
		if (Result{"error": "x"}).Token() != nil {
			t.Error("expected nil token")
		}
	})
}
