package main

import "github.com/gdamore/tcell/v2"

// pumpEvents 把阻塞的 poll 结果转交给帧循环
//
// poll 返回 nil（屏幕已关闭）时关闭 events；done 关闭后不再投递，帧循环退出后 goroutine 不会阻塞。
func pumpEvents(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
