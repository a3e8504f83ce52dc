package export

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/andybalholm/brotli"

	"employee-manager/internal/domain"
)

// Snapshot is the archival form of a roster export: the full collection plus
// when and for whom it was taken.
type Snapshot struct {
	OwnerUID  string                     `json:"ownerUid"`
	TakenAt   time.Time                  `json:"takenAt"`
	Employees map[string]domain.Employee `json:"employees"`
}

// WriteSnapshot writes the snapshot as brotli-compressed JSON. Map keys are
// emitted in sorted order (encoding/json does this), so identical snapshots
// compress to identical archives.
func WriteSnapshot(w io.Writer, s Snapshot) error {
	if s.Employees == nil {
		s.Employees = map[string]domain.Employee{}
	}

	bw := brotli.NewWriter(w)
	if err := json.NewEncoder(bw).Encode(s); err != nil {
		return fmt.Errorf("export: encode snapshot: %w", err)
	}
	if err := bw.Close(); err != nil {
		return fmt.Errorf("export: compress snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a brotli-compressed snapshot.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	var s Snapshot
	br := brotli.NewReader(r)
	if err := json.NewDecoder(br).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("export: decode snapshot: %w", err)
	}
	if s.Employees == nil {
		s.Employees = map[string]domain.Employee{}
	}
	return s, nil
}

// SnapshotFileName names an archive after its owner and timestamp, e.g.
// roster_owner-1_20240131T120000Z.json.br.
func SnapshotFileName(ownerUID string, takenAt time.Time) string {
	return fmt.Sprintf("roster_%s_%s.json.br", ownerUID, takenAt.UTC().Format("20060102T150405Z"))
}

// SortedIDs returns roster keys in stable order. Shared by export formats
// that need deterministic row ordering.
func SortedIDs(roster map[string]domain.Employee) []string {
	ids := make([]string, 0, len(roster))
	for id := range roster {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
