package planner

// Advisory warning messages. Warnings never block a successful result;
// callers surface them as dismissible notices.
const (
	WarnQuestNotCompletable = "quest %s cannot be completed in this budget"
	WarnQuestsUnfinished    = "%d quest(s) cannot be completed in this budget"
	WarnQuestExpiresToday   = "quest %s expires today"
	WarnQuestExpiresSoon    = "quest %s expires tomorrow"
	WarnUnusedTime          = "plan leaves %.0f minutes of the budget unused"
	WarnUnknownQueue        = "unknown queue %q ignored"
	WarnNoPreferredQueues   = "no preferred queue matched the reward table; considering all queues"
	WarnAllTimeUsed         = "all time used"
	WarnRemainingTooSmall   = "insufficient remaining time to plan further steps"
)
