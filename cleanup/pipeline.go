package cleanup

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pacmaze/connectivity"
	"github.com/katalvlaran/pacmaze/grid"
	"github.com/katalvlaran/pacmaze/internal/logging"
	"github.com/katalvlaran/pacmaze/rng"
)

// Report summarizes what Run changed.
type Report struct {
	AisleWalled    int   // seam cells walled by EnforceAisle
	OrphansPruned  int   // dead-end cells walled by PruneOrphans
	TeleporterRows []int // rows given a teleporter, in draw order
}

// Run applies the cleanup passes to the half-grid g in order. A
// connectivity failure is returned wrapped around
// connectivity.ErrUnrepairable; g must then be discarded.
func Run(g *grid.Grid, r *rng.Random, teleporters rng.Range, log logrus.FieldLogger) (Report, error) {
	log = logging.OrDiscard(log)
	var rep Report
	rep.AisleWalled = EnforceAisle(g)
	rep.OrphansPruned = PruneOrphans(g)
	rep.TeleporterRows = PlaceTeleporters(g, r, teleporters)

	log.WithFields(logrus.Fields{
		"aisle":       rep.AisleWalled,
		"orphans":     rep.OrphansPruned,
		"teleporters": rep.TeleporterRows,
	}).Debug("cleanup passes done")

	if err := connectivity.Repair(g); err != nil {
		return rep, fmt.Errorf("cleanup: %w", err)
	}
	return rep, nil
}
