package garden

import (
	"context"
	"time"
)

// 轮询间隔：会话到点检测走秒级，衰减结算走分钟级
const (
	DefaultCompletionInterval = 2 * time.Second
	DefaultDecayInterval      = 5 * time.Minute
)

// Poller 定期采样墙钟驱动 Store。会话完成不是定时器回调，
// 是轮询检测出来的，检测时刻可能比名义到点晚最多一个间隔
type Poller struct {
	store *Store

	CompletionInterval time.Duration
	DecayInterval      time.Duration
}

func NewPoller(store *Store) *Poller {
	return &Poller{
		store:              store,
		CompletionInterval: DefaultCompletionInterval,
		DecayInterval:      DefaultDecayInterval,
	}
}

// Run 阻塞跑到 ctx 取消为止，组合根里用 goroutine 起
func (p *Poller) Run(ctx context.Context) {
	completion := time.NewTicker(p.CompletionInterval)
	defer completion.Stop()
	decay := time.NewTicker(p.DecayInterval)
	defer decay.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-completion.C:
			if _, settled, err := p.store.CheckCompletion(); err != nil {
				p.store.log.Error("completion check failed", "error", err)
			} else if settled {
				p.store.log.Info("session auto-completed")
			}
		case <-decay.C:
			if err := p.store.TickDecay(); err != nil {
				p.store.log.Error("decay tick failed", "error", err)
			}
		}
	}
}
