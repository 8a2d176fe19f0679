package dxfrender

import (
	"github.com/wieslawsoltes/DxfParser-sub001/internal/parallel"
	"github.com/wieslawsoltes/DxfParser-sub001/tess"
)

// tessellate triangulates every fill that is not already a mesh. With more
// than one worker the fills are triangulated concurrently; each job only
// reads its own fill.
func (b *builder) tessellate() {
	f := b.frame
	var todo []int
	for i := range f.Fills {
		if f.Fills[i].Mesh == nil {
			todo = append(todo, i)
		}
	}
	if len(todo) == 0 {
		return
	}

	var pool *parallel.WorkerPool
	if b.opts.workers > 1 && len(todo) > 1 {
		pool = parallel.NewWorkerPool(b.opts.workers)
		defer pool.Close()
	}
	type outcome struct {
		res tess.Result
		ok  bool
	}
	results := parallel.Map(pool, todo, func(i int) (out outcome) {
		defer func() {
			if recover() != nil {
				out = outcome{}
			}
		}()
		return outcome{res: tess.Triangulate(f.Fills[i].World), ok: true}
	})

	st := &f.Stats
	for k, i := range todo {
		r := results[k]
		if !r.ok {
			st.Skipped++
			b.log.Warn("dxfrender: fill tessellation failed", "handle", f.Fills[i].Handle)
			continue
		}
		res := r.res
		f.Fills[i].Mesh = &res
		st.Tessellated++
		if res.Fallback {
			st.Fallbacks++
		}
	}
}
