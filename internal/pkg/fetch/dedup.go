package fetch

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Deduper 以 key 为单位的一次性请求缓存
// 详情读取在服务端有自增浏览量的副作用，同一 key 的重复调用
// （并发的和先后到达的）只放行第一次，成功结果直接复用
// 失败不缓存，调用方可以重试
type Deduper struct {
	group singleflight.Group

	mu   sync.Mutex
	done map[string]result
}

type result struct {
	val any
	err error
}

func NewDeduper() *Deduper {
	return &Deduper{done: make(map[string]result)}
}

// Do 同一 key 只执行一次 fn，之后返回缓存结果
func (d *Deduper) Do(key string, fn func() (any, error)) (any, error) {
	d.mu.Lock()
	if r, ok := d.done[key]; ok {
		d.mu.Unlock()
		return r.val, r.err
	}
	d.mu.Unlock()

	v, err, _ := d.group.Do(key, func() (any, error) {
		v, err := fn()
		if err == nil {
			d.mu.Lock()
			d.done[key] = result{val: v}
			d.mu.Unlock()
		}
		return v, err
	})
	return v, err
}

// Forget 使缓存失效，下一次 Do 重新执行
func (d *Deduper) Forget(key string) {
	d.mu.Lock()
	delete(d.done, key)
	d.mu.Unlock()
	d.group.Forget(key)
}
