package jobs

import (
	"context"
	"log"
	"time"

	"vendor-kyc.backend/internal/domain/repositories"
	"vendor-kyc.backend/internal/infrastructure/storage"
)

// minOrphanAge keeps the sweep from racing an in-flight upload whose slot row
// has not committed yet
const minOrphanAge = 1 * time.Hour

// DocumentOrphanSweepJob removes stored files no document slot references.
// Orphans appear when a post-commit delete of a replaced file fails, or when
// the process dies between writing a file and committing its slot.
type DocumentOrphanSweepJob struct {
	docRepo  repositories.DocumentRepository
	store    *storage.LocalStore
	interval time.Duration
	stop     chan struct{}
}

func NewDocumentOrphanSweepJob(docRepo repositories.DocumentRepository, store *storage.LocalStore, interval time.Duration) *DocumentOrphanSweepJob {
	return &DocumentOrphanSweepJob{
		docRepo:  docRepo,
		store:    store,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (j *DocumentOrphanSweepJob) Start(ctx context.Context) {
	log.Println("🕐 Starting document orphan sweep job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Document orphan sweep job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Document orphan sweep job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *DocumentOrphanSweepJob) Stop() {
	close(j.stop)
}

func (j *DocumentOrphanSweepJob) sweep(ctx context.Context) {
	refs, err := j.store.ListRefs(ctx)
	if err != nil {
		log.Printf("❌ Error listing stored documents: %v", err)
		return
	}
	if len(refs) == 0 {
		return
	}

	paths, err := j.docRepo.ListAllPaths(ctx)
	if err != nil {
		log.Printf("❌ Error listing referenced documents: %v", err)
		return
	}

	referenced := make(map[string]bool, len(paths))
	for _, p := range paths {
		referenced[p] = true
	}

	cutoff := time.Now().Add(-minOrphanAge)
	removed := 0
	for _, ref := range refs {
		if referenced[ref.Path] || ref.ModTime.After(cutoff) {
			continue
		}
		if err := j.store.Delete(ctx, ref.Path); err != nil {
			log.Printf("❌ Error removing orphan document %s: %v", ref.Path, err)
			continue
		}
		removed++
	}

	if removed > 0 {
		log.Printf("✅ Removed %d orphan document files", removed)
	}
}
