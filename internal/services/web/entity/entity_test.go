package entity

import "testing"

func TestResolveEmptyList(t *testing.T) {
	t.Parallel()

	if _, ok := Resolve(nil, "acme-org"); ok {
		t.Fatal("expected no selection from empty list")
	}
}

func TestResolvePrefersPersonalWithoutStoredSlug(t *testing.T) {
	t.Parallel()

	entities := []Entity{
		{Slug: "acme-org", Type: TypeOrganizational},
		{Slug: "jane-personal", Type: TypePersonal},
	}
	got, ok := Resolve(entities, "")
	if !ok {
		t.Fatal("expected a selection")
	}
	if got.Slug != "jane-personal" {
		t.Fatalf("selected = %q, want %q", got.Slug, "jane-personal")
	}
}

func TestResolveStoredSlugWinsOverPersonal(t *testing.T) {
	t.Parallel()

	entities := []Entity{
		{Slug: "acme-org", Type: TypeOrganizational},
		{Slug: "jane-personal", Type: TypePersonal},
	}
	got, ok := Resolve(entities, "acme-org")
	if !ok {
		t.Fatal("expected a selection")
	}
	if got.Slug != "acme-org" {
		t.Fatalf("selected = %q, want %q", got.Slug, "acme-org")
	}
}

func TestResolveStaleSlugFallsBackToPersonal(t *testing.T) {
	t.Parallel()

	entities := []Entity{
		{Slug: "acme-org", Type: TypeOrganizational},
		{Slug: "jane-personal", Type: TypePersonal},
	}
	got, ok := Resolve(entities, "deleted-entity")
	if !ok {
		t.Fatal("expected a selection")
	}
	if got.Slug != "jane-personal" {
		t.Fatalf("selected = %q, want %q", got.Slug, "jane-personal")
	}
}

func TestResolveFallsBackToFirstInBackendOrder(t *testing.T) {
	t.Parallel()

	entities := []Entity{
		{Slug: "beta-org", Type: TypeOrganizational},
		{Slug: "alpha-org", Type: TypeOrganizational},
	}
	got, ok := Resolve(entities, "")
	if !ok {
		t.Fatal("expected a selection")
	}
	if got.Slug != "beta-org" {
		t.Fatalf("selected = %q, want %q", got.Slug, "beta-org")
	}
}
