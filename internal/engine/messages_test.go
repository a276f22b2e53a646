package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lentoflow/internal/domain"
)

func TestMotivationalMessage_Newcomer(t *testing.T) {
	today := date(2026, time.March, 10)

	msg := MotivationalMessage(100, 0, nil, today)

	assert.Equal(t, "新的一天，新的开始！添加你想培养的习惯吧 ✨", msg)
}

func TestMotivationalMessage_CriticalTaskTakesPrecedence(t *testing.T) {
	today := date(2026, time.March, 10)
	urgent := &domain.TaskState{Name: "跑步", Urgency: 7.51, LastDone: daysAgo(today, 6)}

	msg := MotivationalMessage(90, 3, urgent, today)

	assert.Equal(t, "跑步已经等你6天了，今天来打个卡？ 📝", msg)
}

func TestMotivationalMessage_CriticalNeverDone(t *testing.T) {
	today := date(2026, time.March, 10)
	urgent := &domain.TaskState{Name: "冥想", Urgency: 3.2}

	msg := MotivationalMessage(50, 2, urgent, today)

	assert.Equal(t, "冥想已经等你很久天了，今天来打个卡？ 📝", msg)
}

func TestMotivationalMessage_HealthBands(t *testing.T) {
	today := date(2026, time.March, 10)
	calm := &domain.TaskState{Name: "阅读", Urgency: 1.0}

	assert.Equal(t, "所有习惯都保持得很好！今天继续加油 💪", MotivationalMessage(80, 2, calm, today))
	assert.Equal(t, "状态不错！选一两个任务完成就很棒了 🎯", MotivationalMessage(60, 2, calm, today))
	assert.Equal(t, "有些习惯在想念你了，今天看看它们？ 🌱", MotivationalMessage(40, 2, calm, today))
	assert.Equal(t, "别担心，每天进步一点点就好 🌈", MotivationalMessage(39.9, 2, calm, today))
}
