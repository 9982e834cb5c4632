package service

import "time"

// Clock 时间源，聚合与定时任务通过它取“当前时间”
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock 系统时钟
func SystemClock() Clock { return systemClock{} }

// FixedClock 固定时间，测试使用
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }
