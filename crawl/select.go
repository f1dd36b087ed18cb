package crawl

import (
	"strconv"
	"strings"

	"github.com/fwojciec/wixbook"
)

// SelectChapters returns the zero-based positions picked out of total
// chapters. rng is a 1-based inclusive range such as "5-12" or "5-" (to
// the end); list is a comma-separated set of 1-based positions such as
// "1,3,5", returned in the given order without repeats. With neither set
// every position is returned.
func SelectChapters(total int, rng, list string) ([]int, error) {
	rng, list = strings.TrimSpace(rng), strings.TrimSpace(list)

	switch {
	case rng != "" && list != "":
		return nil, wixbook.Errorf(wixbook.EINVALID, "use either a chapter range or a chapter list, not both")
	case rng != "":
		return selectRange(total, rng)
	case list != "":
		return selectList(total, list)
	}

	out := make([]int, total)
	for i := range out {
		out[i] = i
	}
	return out, nil
}

func selectRange(total int, rng string) ([]int, error) {
	from, to, ok := strings.Cut(rng, "-")
	if !ok {
		return nil, wixbook.Errorf(wixbook.EINVALID, "invalid chapter range %q: want FROM-TO", rng)
	}

	start, err := atoi(from)
	if err != nil {
		return nil, wixbook.Errorf(wixbook.EINVALID, "invalid chapter range %q", rng)
	}
	end := total
	if strings.TrimSpace(to) != "" {
		if end, err = atoi(to); err != nil {
			return nil, wixbook.Errorf(wixbook.EINVALID, "invalid chapter range %q", rng)
		}
	}

	if start <= 0 || start > end || end > total {
		return nil, wixbook.Errorf(wixbook.EINVALID, "chapter range %q outside 1-%d", rng, total)
	}

	out := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		out = append(out, i-1)
	}
	return out, nil
}

func selectList(total int, list string) ([]int, error) {
	seen := make(map[int]bool)
	var out []int
	for _, n := range strings.Split(list, ",") {
		if strings.TrimSpace(n) == "" {
			continue
		}
		idx, err := atoi(n)
		if err != nil {
			return nil, wixbook.Errorf(wixbook.EINVALID, "invalid chapter number %q", strings.TrimSpace(n))
		}
		if idx <= 0 || idx > total {
			return nil, wixbook.Errorf(wixbook.EINVALID, "chapter %d outside 1-%d", idx, total)
		}
		if seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, idx-1)
	}
	return out, nil
}

func atoi(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
