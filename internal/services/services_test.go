package services

import (
	"context"
	"testing"

	customerrors "github.com/axellelanca/minicrud/internal/errors"
	"github.com/axellelanca/minicrud/internal/models"
)

// fakeLinkRepo keeps links in memory. takenOnce makes the next Create of that
// code fail as if a concurrent writer had inserted it first.
type fakeLinkRepo struct {
	links     map[string]*models.ShortLink
	takenOnce map[string]bool
	creates   int
}

func newFakeLinkRepo() *fakeLinkRepo {
	return &fakeLinkRepo{links: map[string]*models.ShortLink{}, takenOnce: map[string]bool{}}
}

func (f *fakeLinkRepo) Exists(_ context.Context, code string) (bool, error) {
	_, ok := f.links[code]
	return ok, nil
}

func (f *fakeLinkRepo) Create(_ context.Context, link *models.ShortLink) error {
	f.creates++
	if _, ok := f.links[link.ShortID]; ok || len(f.takenOnce) > 0 {
		for code := range f.takenOnce {
			delete(f.takenOnce, code)
		}
		return customerrors.ErrShortIDTaken
	}
	cp := *link
	f.links[link.ShortID] = &cp
	return nil
}

func (f *fakeLinkRepo) FindByShortID(_ context.Context, code string) (*models.ShortLink, error) {
	link, ok := f.links[code]
	if !ok {
		return nil, customerrors.ErrNotFound
	}
	cp := *link
	return &cp, nil
}

func (f *fakeLinkRepo) IncrementClicks(_ context.Context, code string) error {
	link, ok := f.links[code]
	if !ok {
		return customerrors.ErrNotFound
	}
	link.Clicks++
	return nil
}

func (f *fakeLinkRepo) All(context.Context) ([]models.ShortLink, error) {
	var out []models.ShortLink
	for _, l := range f.links {
		out = append(out, *l)
	}
	return out, nil
}

func TestLinkService_ShortenResolveStats(t *testing.T) {
	ctx := context.Background()
	repo := newFakeLinkRepo()
	svc := NewLinkService(repo, 6, 0)

	link, err := svc.Shorten(ctx, "https://example.com")
	if err != nil {
		t.Fatalf("Shorten: %v", err)
	}
	if len(link.ShortID) != 6 || link.Clicks != 0 {
		t.Fatalf("link = %+v", link)
	}

	target, err := svc.Resolve(ctx, link.ShortID)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if target != "https://example.com" {
		t.Fatalf("target = %q", target)
	}

	stats, err := svc.Stats(ctx, link.ShortID)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Clicks != 1 || stats.FullURL != "https://example.com" {
		t.Fatalf("stats = %+v, want 1 click", stats)
	}

	// Stats is read-only.
	stats, _ = svc.Stats(ctx, link.ShortID)
	if stats.Clicks != 1 {
		t.Fatalf("clicks after second stats = %d", stats.Clicks)
	}
}

func TestLinkService_ShortenRetriesWhenInsertClashes(t *testing.T) {
	repo := newFakeLinkRepo()
	repo.takenOnce["any"] = true
	svc := NewLinkService(repo, 6, 0)

	link, err := svc.Shorten(context.Background(), "https://example.org")
	if err != nil {
		t.Fatalf("Shorten: %v", err)
	}
	if repo.creates != 2 {
		t.Fatalf("creates = %d, want 2", repo.creates)
	}
	if _, ok := repo.links[link.ShortID]; !ok {
		t.Fatalf("returned code %q was not stored", link.ShortID)
	}
}

func TestLinkService_UnknownShortID(t *testing.T) {
	ctx := context.Background()
	svc := NewLinkService(newFakeLinkRepo(), 6, 0)

	if _, err := svc.Resolve(ctx, "zzzzzz"); !customerrors.IsNotFound(err) {
		t.Errorf("Resolve err = %v, want ErrNotFound", err)
	}
	if _, err := svc.Stats(ctx, "zzzzzz"); !customerrors.IsNotFound(err) {
		t.Errorf("Stats err = %v, want ErrNotFound", err)
	}
}

type fakeTaskRepo struct {
	nextID  int64
	tasks   map[int64]models.Task
	order   []int64
	updates int
	deletes int
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[int64]models.Task{}}
}

func (f *fakeTaskRepo) Create(_ context.Context, task *models.Task) error {
	f.nextID++
	task.ID = f.nextID
	f.tasks[task.ID] = *task
	f.order = append(f.order, task.ID)
	return nil
}

func (f *fakeTaskRepo) List(context.Context) ([]models.Task, error) {
	out := []models.Task{}
	for _, id := range f.order {
		if task, ok := f.tasks[id]; ok {
			out = append(out, task)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) FindByID(_ context.Context, id int64) (*models.Task, error) {
	task, ok := f.tasks[id]
	if !ok {
		return nil, customerrors.ErrNotFound
	}
	return &task, nil
}

func (f *fakeTaskRepo) Update(_ context.Context, task *models.Task) error {
	f.updates++
	f.tasks[task.ID] = *task
	return nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, id int64) error {
	f.deletes++
	delete(f.tasks, id)
	return nil
}

func TestTaskService_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo)

	created, err := svc.Create(ctx, "buy milk", false)
	if err != nil {
		t.Fatal(err)
	}
	if created.ID != 1 || created.Title != "buy milk" || created.Completed {
		t.Fatalf("created = %+v", created)
	}

	updated, err := svc.Update(ctx, created.ID, "buy bread", true)
	if err != nil {
		t.Fatal(err)
	}
	if *updated != (models.Task{ID: 1, Title: "buy bread", Completed: true}) {
		t.Fatalf("updated = %+v", updated)
	}
	got, err := svc.Get(ctx, created.ID)
	if err != nil || got.Title != "buy bread" || !got.Completed {
		t.Fatalf("Get = %+v, %v", got, err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Get(ctx, created.ID); !customerrors.IsNotFound(err) {
		t.Fatalf("Get after delete err = %v", err)
	}
}

func TestTaskService_MissingIDsDoNotMutate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo)

	if _, err := svc.Update(ctx, 42, "x", true); !customerrors.IsNotFound(err) {
		t.Errorf("Update err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, 42); !customerrors.IsNotFound(err) {
		t.Errorf("Delete err = %v, want ErrNotFound", err)
	}
	if repo.updates != 0 || repo.deletes != 0 {
		t.Errorf("store mutated: %d updates, %d deletes", repo.updates, repo.deletes)
	}
}
