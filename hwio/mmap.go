package hwio

import "sort"

// Mapping associates an inclusive index range with a device.
type Mapping[Idx, V Value] struct {
	Start, End Idx
	Dev        Device[Idx, V]
}

// width is the range length, used to order same-base mappings.
func (m Mapping[Idx, V]) width() uint64 {
	return uint64(m.End - m.Start)
}

// mmap is the interval index: mapping starts kept sorted, with the mappings
// beginning at each start. Several mappings may share a base (a register
// overlaid on RAM); those are kept ordered narrowest range first, so the most
// specific mapping wins resolution.
type mmap[Idx, V Value] struct {
	bases []Idx
	maps  map[Idx][]Mapping[Idx, V]
}

func (t *mmap[Idx, V]) insert(m Mapping[Idx, V]) {
	if t.maps == nil {
		t.maps = make(map[Idx][]Mapping[Idx, V])
	}

	devs, ok := t.maps[m.Start]
	if !ok {
		i := sort.Search(len(t.bases), func(i int) bool { return t.bases[i] >= m.Start })
		t.bases = append(t.bases, m.Start)
		copy(t.bases[i+1:], t.bases[i:])
		t.bases[i] = m.Start
	}

	// Narrowest first. Equal widths keep insertion order.
	i := sort.Search(len(devs), func(i int) bool { return devs[i].width() > m.width() })
	devs = append(devs, Mapping[Idx, V]{})
	copy(devs[i+1:], devs[i:])
	devs[i] = m
	t.maps[m.Start] = devs
}

// remove locates dev by instance identity anywhere in the index and removes
// its mapping. Devices must be mapped behind pointers for identity to be
// meaningful.
func (t *mmap[Idx, V]) remove(dev Device[Idx, V]) (Mapping[Idx, V], bool) {
	for bi, base := range t.bases {
		devs := t.maps[base]
		for i, m := range devs {
			if m.Dev != dev {
				continue
			}
			devs = append(devs[:i], devs[i+1:]...)
			if len(devs) == 0 {
				delete(t.maps, base)
				t.bases = append(t.bases[:bi], t.bases[bi+1:]...)
			} else {
				t.maps[base] = devs
			}
			return m, true
		}
	}
	return Mapping[Idx, V]{}, false
}

// resolve finds the mapping servicing index. Bases not above index are
// considered in descending order so that a higher-based, more specific
// mapping shadows part of a larger, lower-based one; within a base the
// narrowest mapping is tried first. A candidate matches when its device
// contains the translated offset, which also lets accesses fall through the
// holes of a nested bus onto mappings below it.
func (t *mmap[Idx, V]) resolve(index Idx) (Mapping[Idx, V], bool) {
	hi := sort.Search(len(t.bases), func(i int) bool { return t.bases[i] > index })
	for bi := hi - 1; bi >= 0; bi-- {
		base := t.bases[bi]
		for _, m := range t.maps[base] {
			if m.Dev.Contains(index - base) {
				return m, true
			}
		}
	}
	return Mapping[Idx, V]{}, false
}

func (t *mmap[Idx, V]) clear() {
	t.bases = nil
	t.maps = nil
}

func (t *mmap[Idx, V]) empty() bool {
	return len(t.bases) == 0
}

// all returns every mapping, ordered by base then by the same-base tie-break.
func (t *mmap[Idx, V]) all() []Mapping[Idx, V] {
	var ms []Mapping[Idx, V]
	for _, base := range t.bases {
		ms = append(ms, t.maps[base]...)
	}
	return ms
}
