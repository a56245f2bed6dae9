package mashup

import (
	"context"
	"fmt"
	"log/slog"

	"SpliceSafari/catalog"
	"SpliceSafari/core"
	"SpliceSafari/lib/sl"
)

// Illustrator produces the poster for a pairing and never fails
type Illustrator interface {
	Illustrate(ctx context.Context, animalA, animalB, speciesName string) core.ImageResult
	Status() core.ConfigStatus
}

// Lab runs spins: selector first, then the illustrator
type Lab struct {
	catalog     *catalog.Catalog
	random      catalog.Random
	illustrator Illustrator
	log         *slog.Logger
}

var _ core.MashupService = (*Lab)(nil)

func NewLab(c *catalog.Catalog, random catalog.Random, illustrator Illustrator, log *slog.Logger) *Lab {
	if random == nil {
		random = catalog.Global
	}
	return &Lab{
		catalog:     c,
		random:      random,
		illustrator: illustrator,
		log:         log.With(sl.Module("lab")),
	}
}

func (l *Lab) Spin(ctx context.Context) (*core.Mashup, error) {
	a, b, err := PickPair(l.random, l.catalog.Subjects)
	if err != nil {
		return nil, fmt.Errorf("picking pair: %w", err)
	}
	name := ComposeName(l.random, a, b, l.catalog.Modifiers)

	image := l.illustrator.Illustrate(ctx, a, b, name)
	l.log.With(
		slog.String("a", a),
		slog.String("b", b),
		slog.String("species", name),
		slog.String("source", string(image.Source)),
	).Info("spin complete")

	return &core.Mashup{
		Animals:     [2]string{a, b},
		SpeciesName: name,
		Image:       image,
	}, nil
}

func (l *Lab) Status() core.ConfigStatus {
	return l.illustrator.Status()
}
