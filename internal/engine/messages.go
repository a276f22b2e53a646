package engine

import (
	"fmt"
	"strconv"
	"time"

	"lentoflow/internal/domain"
)

const (
	msgNewcomer     = "新的一天，新的开始！添加你想培养的习惯吧 ✨"
	msgAllThriving  = "所有习惯都保持得很好！今天继续加油 💪"
	msgGoodShape    = "状态不错！选一两个任务完成就很棒了 🎯"
	msgMissingYou   = "有些习惯在想念你了，今天看看它们？ 🌱"
	msgSmallSteps   = "别担心，每天进步一点点就好 🌈"
	msgLongOverdueD = "%s已经等你%s天了，今天来打个卡？ 📝"
)

// MotivationalMessage picks the day's prose line. A critical most-urgent task
// takes precedence over the health bands; selection is fully deterministic.
func MotivationalMessage(healthScore float64, tasksCount int, mostUrgent *domain.TaskState, today time.Time) string {
	if tasksCount == 0 {
		return msgNewcomer
	}

	if mostUrgent != nil && mostUrgent.Urgency >= CriticalUrgency {
		days := "很久"
		if mostUrgent.LastDone != nil {
			days = strconv.Itoa(domain.DaysBetween(*mostUrgent.LastDone, today))
		}
		return fmt.Sprintf(msgLongOverdueD, mostUrgent.Name, days)
	}

	switch {
	case healthScore >= 80:
		return msgAllThriving
	case healthScore >= 60:
		return msgGoodShape
	case healthScore >= 40:
		return msgMissingYou
	default:
		return msgSmallSteps
	}
}
