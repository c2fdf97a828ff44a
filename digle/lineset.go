package digle

import "slices"

// lineSet is an ordered set of LineIds backed by a sorted slice. It is
// the storage behind the live and tombstoned line sets, which iterate
// in ascending order and serialize as sorted sequences.
type lineSet struct {
	ids []LineId
}

func (s *lineSet) contains(id LineId) bool {
	_, found := slices.BinarySearchFunc(s.ids, id, LineId.Compare)

	return found
}

// insert adds id, reporting whether it was absent.
func (s *lineSet) insert(id LineId) bool {
	i, found := slices.BinarySearchFunc(s.ids, id, LineId.Compare)
	if found {
		return false
	}
	s.ids = slices.Insert(s.ids, i, id)

	return true
}

// remove deletes id, reporting whether it was present.
func (s *lineSet) remove(id LineId) bool {
	i, found := slices.BinarySearchFunc(s.ids, id, LineId.Compare)
	if !found {
		return false
	}
	s.ids = slices.Delete(s.ids, i, i+1)

	return true
}

func (s *lineSet) len() int {
	return len(s.ids)
}

func (s *lineSet) clone() lineSet {
	return lineSet{ids: slices.Clone(s.ids)}
}

func (s *lineSet) equal(o *lineSet) bool {
	return slices.EqualFunc(s.ids, o.ids, func(a, b LineId) bool {
		return a.Compare(b) == 0
	})
}
