package domain

// ReviewAction - действие над заявкой, меняющее её статус
type ReviewAction string

const (
	ReviewActionAccept   ReviewAction = "accept"
	ReviewActionReject   ReviewAction = "reject"
	ReviewActionComplete ReviewAction = "complete"
)

// transitions - закрытая таблица допустимых переходов статусов.
// Легальность перехода проверяется только здесь, а не сравнением
// полей в каждом вызывающем месте.
var transitions = map[ReviewStatus]map[ReviewAction]ReviewStatus{
	ReviewStatusPending: {
		ReviewActionAccept: ReviewStatusAccepted,
		ReviewActionReject: ReviewStatusRejected,
	},
	ReviewStatusAccepted: {
		ReviewActionComplete: ReviewStatusCompleted,
	},
}

// NextStatus возвращает статус после применения action к current.
// Для недопустимой пары (current, action) возвращает ErrAlreadyResolved,
// если заявка уже покинула pending и к ней применяют accept/reject,
// иначе ErrInvalidTransition.
func NextStatus(current ReviewStatus, action ReviewAction) (ReviewStatus, error) {
	if next, ok := transitions[current][action]; ok {
		return next, nil
	}
	if (action == ReviewActionAccept || action == ReviewActionReject) && current != ReviewStatusPending {
		return "", ErrAlreadyResolved
	}
	return "", ErrInvalidTransition
}

// IsTerminal сообщает, является ли статус терминальным: из rejected и
// completed переходов нет, новая заявка для той же пары создаётся
// заново через Create.
func IsTerminal(status ReviewStatus) bool {
	return status == ReviewStatusRejected || status == ReviewStatusCompleted
}
