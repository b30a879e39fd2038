package dashboard

import (
	"context"

	"github.com/sudobility/whisperly-web/internal/services/web/entity"
)

type fakeGateway struct {
	entities []entity.Entity
	err      error
	calls    int
}

func (f *fakeGateway) Entities(context.Context, string) ([]entity.Entity, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.entities, nil
}
