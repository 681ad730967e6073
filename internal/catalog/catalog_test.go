package catalog

import (
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/kleyver/kleyver-app/internal/model"
)

const waitFor = 2 * time.Second

func newDefault(t *testing.T) *Catalog {
	t.Helper()
	c, err := Default(zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

// snapshots collects catalog deliveries across goroutines
type snapshots struct {
	mu  sync.Mutex
	got [][]model.MediaRecord
}

func (s *snapshots) add(records []model.MediaRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, records)
}

func (s *snapshots) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.got)
}

func (s *snapshots) at(i int) []model.MediaRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.got[i]
}

func TestDefault_Seed(t *testing.T) {
	c := newDefault(t)

	assert.Equal(t, 20, c.Len())
	first := c.Snapshot()[0]
	assert.Equal(t, 11, first.ID)
	assert.Equal(t, "Bosque Encantado", first.Title)
	assert.Equal(t, model.KindPhoto, first.Kind)
	assert.Equal(t, model.SizeLarge, first.Size)
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	_, err := New([]model.MediaRecord{
		{ID: 1, Kind: model.KindPhoto},
		{ID: 1, Kind: model.KindPhoto},
	}, zerolog.Nop())
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestNew_RejectsUnknownKind(t *testing.T) {
	_, err := New([]model.MediaRecord{{ID: 1, Kind: "hologram"}}, zerolog.Nop())
	require.ErrorIs(t, err, ErrInvalidRecord)
}

func TestNew_CopiesInput(t *testing.T) {
	input := []model.MediaRecord{{ID: 1, Kind: model.KindPhoto, Title: "a"}}
	c, err := New(input, zerolog.Nop())
	require.NoError(t, err)
	defer c.Close()

	input[0].Title = "changed"
	got, ok := c.FindByID(1)
	require.True(t, ok)
	assert.Equal(t, "a", got.Title)
}

func TestFindByID(t *testing.T) {
	c := newDefault(t)

	r, ok := c.FindByID(14)
	require.True(t, ok)
	assert.Equal(t, "Café Parisino", r.Title)
	assert.Equal(t, model.CategoryGastronomy, r.Category)

	r, ok = c.FindByID(7)
	assert.False(t, ok)
	assert.Equal(t, model.MediaRecord{}, r)
}

func TestSnapshot_IsACopy(t *testing.T) {
	c := newDefault(t)

	snap := c.Snapshot()
	snap[0].Favorite = !snap[0].Favorite
	snap[0].Title = "mutated"

	assert.NotEqual(t, snap[0], c.Snapshot()[0])
}

func TestToggleFavorite_TwiceRestores(t *testing.T) {
	c := newDefault(t)
	before := c.Snapshot()

	for _, r := range before {
		c.ToggleFavorite(r.ID)

		after := c.Snapshot()
		for i := range before {
			if before[i].ID == r.ID {
				assert.Equal(t, !before[i].Favorite, after[i].Favorite)
				assert.Empty(t, cmp.Diff(before[i].WithFavorite(after[i].Favorite), after[i]))
				continue
			}
			assert.Empty(t, cmp.Diff(before[i], after[i]), "record %d changed", before[i].ID)
		}

		c.ToggleFavorite(r.ID)
	}

	assert.Empty(t, cmp.Diff(before, c.Snapshot()))
}

func TestToggleFavorite_UnknownIDIsNoop(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	c, err := Default(zerolog.Nop())
	require.NoError(t, err)
	defer c.Close()

	rec := &snapshots{}
	sub := c.Subscribe(rec.add)
	defer sub.Cancel()
	before := c.Snapshot()

	c.ToggleFavorite(999)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, rec.count())
	assert.Empty(t, cmp.Diff(before, c.Snapshot()))
}

func TestToggleFavorite_Scenario(t *testing.T) {
	records, err := SeedRecords()
	require.NoError(t, err)
	for i := range records {
		if records[i].ID == 10 {
			records[i].Favorite = false
		}
	}
	c, err := New(records, zerolog.Nop())
	require.NoError(t, err)
	defer c.Close()

	favBefore := len(c.FavoritesOnly())
	c.ToggleFavorite(10)

	r, ok := c.FindByID(10)
	require.True(t, ok)
	assert.True(t, r.Favorite)
	assert.Equal(t, model.CategoryArchitecture, r.Category)
	assert.Len(t, c.FavoritesOnly(), favBefore+1)
}

func TestToggleFavorite_DoesNotTouchDeliveredSnapshots(t *testing.T) {
	c := newDefault(t)

	held := c.Snapshot()
	c.ToggleFavorite(held[0].ID)

	assert.Equal(t, false, held[0].Favorite)
}

func TestSubscribe_DeliversSnapshotsInOrder(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	c, err := Default(zerolog.Nop())
	require.NoError(t, err)
	defer c.Close()

	rec := &snapshots{}
	sub := c.Subscribe(rec.add)
	defer sub.Cancel()
	require.Equal(t, 1, rec.count(), "current snapshot is delivered on subscribe")

	c.ToggleFavorite(11) // false -> true
	c.ToggleFavorite(2)  // false -> true

	require.Eventually(t, func() bool { return rec.count() == 3 }, waitFor, 5*time.Millisecond)

	fav := func(records []model.MediaRecord, id int) bool {
		for _, r := range records {
			if r.ID == id {
				return r.Favorite
			}
		}
		t.Fatalf("id %d missing", id)
		return false
	}
	assert.False(t, fav(rec.at(0), 11))
	assert.True(t, fav(rec.at(1), 11))
	assert.False(t, fav(rec.at(1), 2))
	assert.True(t, fav(rec.at(2), 2))
}

func TestSubscribe_SnapshotsAreIndependentCopies(t *testing.T) {
	c := newDefault(t)

	var a, b []model.MediaRecord
	subA := c.Subscribe(func(r []model.MediaRecord) { a = r })
	subB := c.Subscribe(func(r []model.MediaRecord) { b = r })
	defer subA.Cancel()
	defer subB.Cancel()

	a[0].Title = "mine"
	assert.NotEqual(t, "mine", b[0].Title)
	assert.NotEqual(t, "mine", c.Snapshot()[0].Title)
}

func TestSubscribe_CancelStopsSnapshots(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	c, err := Default(zerolog.Nop())
	require.NoError(t, err)
	defer c.Close()

	rec := &snapshots{}
	sub := c.Subscribe(rec.add)
	sub.Cancel()

	c.ToggleFavorite(11)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, rec.count())
}

func TestFilterByCategory(t *testing.T) {
	c := newDefault(t)

	arch := c.FilterByCategory(model.CategoryArchitecture)
	ids := make([]int, 0, len(arch))
	for _, r := range arch {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int{10, 3, 6, 15, 17, 20}, ids)

	assert.Empty(t, c.FilterByCategory("wildlife"))
}

func TestFilterByCategory_PhotosOnly(t *testing.T) {
	c, err := New([]model.MediaRecord{
		{ID: 1, Kind: model.KindPhoto, Category: model.CategoryPeople},
		{ID: 2, Kind: model.KindVideo, Category: model.CategoryPeople},
		{ID: 3, Kind: model.KindPhoto, Category: model.CategoryPeople},
	}, zerolog.Nop())
	require.NoError(t, err)
	defer c.Close()

	got := c.FilterByCategory(model.CategoryPeople)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestFavoritesOnly(t *testing.T) {
	c := newDefault(t)

	favs := c.FavoritesOnly()
	assert.Len(t, favs, 10)
	for _, r := range favs {
		assert.True(t, r.Favorite)
	}
	assert.Equal(t, 10, favs[0].ID)
}

func TestForHome(t *testing.T) {
	c := newDefault(t)

	assert.Len(t, c.ForHome(18), 18)
	assert.Len(t, c.ForHome(100), 20)
	assert.Empty(t, c.ForHome(0))
	assert.Equal(t, 11, c.ForHome(1)[0].ID)
}

func TestCategoryCounts(t *testing.T) {
	c := newDefault(t)

	counts := c.CategoryCounts()
	assert.Equal(t, map[model.Category]int{
		model.CategoryLandscape:    11,
		model.CategoryArchitecture: 6,
		model.CategoryPeople:       1,
		model.CategoryGastronomy:   2,
	}, counts)
}

func TestCategoryCounts_SumMatchesKnownPhotos(t *testing.T) {
	records := []model.MediaRecord{
		{ID: 1, Kind: model.KindPhoto, Category: model.CategoryLandscape},
		{ID: 2, Kind: model.KindPhoto, Category: "wildlife"},
		{ID: 3, Kind: model.KindVideo, Category: model.CategoryLandscape},
		{ID: 4, Kind: model.KindPhoto},
		{ID: 5, Kind: model.KindPhoto, Category: model.CategoryGastronomy},
	}
	counts := CountCategories(records)

	sum := 0
	for _, n := range counts {
		sum += n
	}
	known := 0
	for _, r := range records {
		if r.IsPhoto() && r.Category.IsKnown() {
			known++
		}
	}
	assert.Equal(t, known, sum)
	assert.NotContains(t, counts, model.Category("wildlife"))
	assert.Len(t, counts, 4)
}

func TestSummary(t *testing.T) {
	c := newDefault(t)

	s := c.Summary()
	assert.Equal(t, 20, s.Total)
	assert.Equal(t, 19, s.DistinctLocations) // París, Francia appears twice
	assert.Equal(t, 10, s.Favorites)
	assert.Equal(t, c.CategoryCounts(), s.Categories)

	c.ToggleFavorite(11)
	assert.Equal(t, 11, c.Summary().Favorites)
}

func TestDecodeRecords_DefaultsKind(t *testing.T) {
	records, err := DecodeRecords([]byte("- id: 1\n  title: x\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, model.KindPhoto, records[0].Kind)

	_, err = DecodeRecords([]byte("id: [oops"))
	assert.Error(t, err)
}
