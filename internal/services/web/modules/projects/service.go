package projects

import (
	"context"
	"strings"

	platformi18n "github.com/sudobility/whisperly-web/internal/platform/i18n"
	"github.com/sudobility/whisperly-web/internal/services/web/infra/apiclient"
	apperrors "github.com/sudobility/whisperly-web/internal/services/web/platform/errors"
)

// ProjectGateway is the backend surface for project and dictionary reads
// and writes scoped to one entity.
type ProjectGateway interface {
	Projects(ctx context.Context, userID string, entitySlug string) ([]apiclient.Project, error)
	Project(ctx context.Context, userID string, entitySlug string, projectID string) (apiclient.Project, error)
	CreateProject(ctx context.Context, userID string, entitySlug string, create apiclient.ProjectCreate) (apiclient.Project, error)
	DictionaryTerms(ctx context.Context, userID string, entitySlug string, projectID string) ([]apiclient.DictionaryTerm, error)
	AddDictionaryTerm(ctx context.Context, userID string, entitySlug string, projectID string, create apiclient.DictionaryTermCreate) error
	RemoveDictionaryTerm(ctx context.Context, userID string, entitySlug string, projectID string, termID string) error
}

type unavailableGateway struct{}

func unavailableErr() error {
	return apperrors.EK(apperrors.KindUnavailable, "error.web.projects_unavailable", "project service is not configured")
}

func (unavailableGateway) Projects(context.Context, string, string) ([]apiclient.Project, error) {
	return nil, unavailableErr()
}

func (unavailableGateway) Project(context.Context, string, string, string) (apiclient.Project, error) {
	return apiclient.Project{}, unavailableErr()
}

func (unavailableGateway) CreateProject(context.Context, string, string, apiclient.ProjectCreate) (apiclient.Project, error) {
	return apiclient.Project{}, unavailableErr()
}

func (unavailableGateway) DictionaryTerms(context.Context, string, string, string) ([]apiclient.DictionaryTerm, error) {
	return nil, unavailableErr()
}

func (unavailableGateway) AddDictionaryTerm(context.Context, string, string, string, apiclient.DictionaryTermCreate) error {
	return unavailableErr()
}

func (unavailableGateway) RemoveDictionaryTerm(context.Context, string, string, string, string) error {
	return unavailableErr()
}

type service struct {
	gateway ProjectGateway
}

func newService(gateway ProjectGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) list(ctx context.Context, userID string, entitySlug string) ([]apiclient.Project, error) {
	return s.gateway.Projects(ctx, userID, entitySlug)
}

func (s service) get(ctx context.Context, userID string, entitySlug string, projectID string) (apiclient.Project, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return apiclient.Project{}, apperrors.E(apperrors.KindNotFound, "project id is required")
	}
	return s.gateway.Project(ctx, userID, entitySlug, projectID)
}

func (s service) create(ctx context.Context, userID string, entitySlug string, name string, sourceLanguage string) (apiclient.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return apiclient.Project{}, apperrors.E(apperrors.KindInvalidInput, "project name is required")
	}
	code, ok := platformi18n.Canonical(sourceLanguage)
	if !ok {
		return apiclient.Project{}, apperrors.E(apperrors.KindInvalidInput, "unsupported source language")
	}
	return s.gateway.CreateProject(ctx, userID, entitySlug, apiclient.ProjectCreate{
		Name:           name,
		SourceLanguage: code,
	})
}

func (s service) terms(ctx context.Context, userID string, entitySlug string, projectID string) ([]apiclient.DictionaryTerm, error) {
	return s.gateway.DictionaryTerms(ctx, userID, entitySlug, projectID)
}

func (s service) addTerm(ctx context.Context, userID string, entitySlug string, projectID string, source string, target string) error {
	source = strings.TrimSpace(source)
	target = strings.TrimSpace(target)
	if source == "" || target == "" {
		return apperrors.E(apperrors.KindInvalidInput, "term and translation are required")
	}
	return s.gateway.AddDictionaryTerm(ctx, userID, entitySlug, projectID, apiclient.DictionaryTermCreate{
		Source: source,
		Target: target,
	})
}

func (s service) removeTerm(ctx context.Context, userID string, entitySlug string, projectID string, termID string) error {
	termID = strings.TrimSpace(termID)
	if termID == "" {
		return apperrors.E(apperrors.KindInvalidInput, "term id is required")
	}
	return s.gateway.RemoveDictionaryTerm(ctx, userID, entitySlug, projectID, termID)
}
