package projects

import (
	"context"

	"github.com/sudobility/whisperly-web/internal/services/web/infra/apiclient"
	apperrors "github.com/sudobility/whisperly-web/internal/services/web/platform/errors"
)

type fakeGateway struct {
	projects []apiclient.Project
	terms    []apiclient.DictionaryTerm
	err      error

	created      []apiclient.ProjectCreate
	addedTerms   []apiclient.DictionaryTermCreate
	removedTerms []string
}

func (f *fakeGateway) Projects(context.Context, string, string) ([]apiclient.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.projects, nil
}

func (f *fakeGateway) Project(_ context.Context, _ string, _ string, projectID string) (apiclient.Project, error) {
	if f.err != nil {
		return apiclient.Project{}, f.err
	}
	for _, project := range f.projects {
		if project.ID == projectID {
			return project, nil
		}
	}
	return apiclient.Project{}, apperrors.E(apperrors.KindNotFound, "project not found")
}

func (f *fakeGateway) CreateProject(_ context.Context, _ string, _ string, create apiclient.ProjectCreate) (apiclient.Project, error) {
	if f.err != nil {
		return apiclient.Project{}, f.err
	}
	f.created = append(f.created, create)
	return apiclient.Project{ID: "p-new", Name: create.Name, SourceLanguage: create.SourceLanguage}, nil
}

func (f *fakeGateway) DictionaryTerms(context.Context, string, string, string) ([]apiclient.DictionaryTerm, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.terms, nil
}

func (f *fakeGateway) AddDictionaryTerm(_ context.Context, _ string, _ string, _ string, create apiclient.DictionaryTermCreate) error {
	if f.err != nil {
		return f.err
	}
	f.addedTerms = append(f.addedTerms, create)
	return nil
}

func (f *fakeGateway) RemoveDictionaryTerm(_ context.Context, _ string, _ string, _ string, termID string) error {
	if f.err != nil {
		return f.err
	}
	f.removedTerms = append(f.removedTerms, termID)
	return nil
}
