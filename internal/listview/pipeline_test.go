package listview

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/five82/larder/internal/viewstate"
)

type named struct {
	id   int
	name string
}

func nameOf(n named) string { return n.name }

func names(rows []named) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.name)
	}
	return out
}

func fruit() []named {
	return []named{{1, "Cherry"}, {2, "apple"}, {3, "Banana"}}
}

func stateWith(mut func(*viewstate.State)) viewstate.State {
	st := viewstate.Default()
	if mut != nil {
		mut(&st)
	}
	return st
}

func TestApply_FirstPageAscending(t *testing.T) {
	page := Apply(fruit(), nameOf, stateWith(func(s *viewstate.State) { s.PageSize = 2 }), language.English)

	assert.Equal(t, []string{"apple", "Banana"}, names(page.Rows))
	assert.Equal(t, 3, page.TotalFiltered)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 1, page.RangeStart)
	assert.Equal(t, 2, page.RangeEnd)
	assert.True(t, page.HasRange())
	assert.True(t, page.CanNext())
	assert.False(t, page.CanPrev())
}

func TestApply_SearchFilters(t *testing.T) {
	page := Apply(fruit(), nameOf, stateWith(func(s *viewstate.State) {
		s.PageSize = 2
		s.Search = "an"
	}), language.English)

	assert.Equal(t, []string{"Banana"}, names(page.Rows))
	assert.Equal(t, 1, page.TotalFiltered)
	assert.Equal(t, 1, page.TotalPages)
	assert.False(t, page.CanNext())
}

func TestApply_SearchIsCaseInsensitive(t *testing.T) {
	page := Apply(fruit(), nameOf, stateWith(func(s *viewstate.State) { s.Search = "CHER" }), language.English)
	assert.Equal(t, []string{"Cherry"}, names(page.Rows))
}

func TestApply_PagePastEndIsEmpty(t *testing.T) {
	page := Apply(fruit(), nameOf, stateWith(func(s *viewstate.State) {
		s.PageSize = 2
		s.Page = 5
	}), language.English)

	assert.NotNil(t, page.Rows)
	assert.Empty(t, page.Rows)
	assert.Equal(t, 2, page.TotalPages)
	assert.False(t, page.HasRange())
}

func TestApply_EmptyResult(t *testing.T) {
	for _, pageNum := range []int{1, 2, 10} {
		for _, size := range viewstate.PageSizes {
			page := Apply(fruit(), nameOf, stateWith(func(s *viewstate.State) {
				s.Search = "zzz"
				s.Page = pageNum
				s.PageSize = size
			}), language.English)

			assert.Empty(t, page.Rows)
			assert.Equal(t, 0, page.TotalFiltered)
			assert.Equal(t, 0, page.TotalPages)
			assert.False(t, page.HasRange())
			assert.False(t, page.CanNext())
		}
	}

	page := Apply[named](nil, nameOf, viewstate.Default(), language.English)
	assert.Equal(t, 0, page.TotalPages)
	assert.Empty(t, page.Rows)
}

func TestApply_Descending(t *testing.T) {
	page := Apply(fruit(), nameOf, stateWith(func(s *viewstate.State) { s.SortOrder = viewstate.Desc }), language.English)
	assert.Equal(t, []string{"Cherry", "Banana", "apple"}, names(page.Rows))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	items := fruit()
	_ = Apply(items, nameOf, viewstate.Default(), language.English)
	assert.Equal(t, fruit(), items)
}

func TestSort_StableForTies(t *testing.T) {
	items := []named{{1, "pecha"}, {2, "Aspear"}, {3, "pecha"}, {4, "pecha"}}

	asc := append([]named(nil), items...)
	Sort(asc, nameOf, false, language.English)
	assert.Equal(t, []int{2, 1, 3, 4}, ids(asc))

	desc := append([]named(nil), items...)
	Sort(desc, nameOf, true, language.English)
	assert.Equal(t, []int{1, 3, 4, 2}, ids(desc))
}

func ids(rows []named) []int {
	out := make([]int, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.id)
	}
	return out
}

func TestPaginate_ClampsInputs(t *testing.T) {
	items := fruit()

	page := Paginate(items, 0, 2)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Rows, 2)

	page = Paginate(items, 1, 0)
	assert.Equal(t, viewstate.DefaultPageSize, page.PageSize)
	assert.Len(t, page.Rows, 3)
}

func TestCanNavigate(t *testing.T) {
	assert.False(t, CanNext(1, 0))
	assert.False(t, CanNext(2, 2))
	assert.True(t, CanNext(1, 2))
	assert.False(t, CanPrev(1))
	assert.True(t, CanPrev(2))
}

func randomItems(r *rand.Rand, n int) []named {
	alphabet := []rune("abABnN")
	out := make([]named, n)
	for i := range out {
		var b strings.Builder
		for j := 0; j < 1+r.Intn(6); j++ {
			b.WriteRune(alphabet[r.Intn(len(alphabet))])
		}
		out[i] = named{id: i, name: b.String()}
	}
	return out
}

func TestFilter_SoundAndComplete(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for iter := 0; iter < 200; iter++ {
		items := randomItems(r, r.Intn(30))
		search := []string{"", "a", "B", "an", "Nn", "ab"}[r.Intn(6)]

		got := Filter(items, nameOf, search)
		kept := make(map[int]bool, len(got))
		for _, item := range got {
			kept[item.id] = true
			require.Contains(t, strings.ToLower(item.name), strings.ToLower(search))
		}
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.name), strings.ToLower(search)) {
				require.True(t, kept[item.id], "item %q dropped for search %q", item.name, search)
			}
		}
	}
}

func TestSort_IdempotentAndReversible(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for iter := 0; iter < 100; iter++ {
		items := randomItems(r, r.Intn(25))

		once := append([]named(nil), items...)
		Sort(once, nameOf, false, language.English)
		twice := append([]named(nil), once...)
		Sort(twice, nameOf, false, language.English)
		require.Equal(t, once, twice)

		desc := append([]named(nil), once...)
		Sort(desc, nameOf, true, language.English)
		require.Equal(t, reverseGroups(names(once)), names(desc))
	}
}

// reverseGroups reverses a sorted name list, treating runs of equal names as
// indivisible so only the order between distinct names is compared.
func reverseGroups(sorted []string) []string {
	var groups [][]string
	for _, n := range sorted {
		if len(groups) > 0 && groups[len(groups)-1][0] == n {
			groups[len(groups)-1] = append(groups[len(groups)-1], n)
			continue
		}
		groups = append(groups, []string{n})
	}
	out := make([]string, 0, len(sorted))
	for i := len(groups) - 1; i >= 0; i-- {
		out = append(out, groups[i]...)
	}
	return out
}

func TestPaginate_RangeMatchesRows(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for iter := 0; iter < 100; iter++ {
		items := randomItems(r, r.Intn(120))
		size := viewstate.PageSizes[r.Intn(len(viewstate.PageSizes))]
		probe := Paginate(items, 1, size)
		for pageNum := 1; pageNum <= probe.TotalPages; pageNum++ {
			page := Paginate(items, pageNum, size)
			msg := fmt.Sprintf("n=%d size=%d page=%d", len(items), size, pageNum)
			require.Equal(t, len(page.Rows), page.RangeEnd-page.RangeStart+1, msg)
			require.LessOrEqual(t, page.RangeEnd, page.TotalFiltered, msg)
			require.True(t, page.HasRange(), msg)
		}
	}
}
