package engine

// Code 业务结果的稳定原因码，前端据此做本地化提示
type Code string

const (
	CodeOK                Code = "ok"
	CodeInsufficientFunds Code = "insufficient_funds"  // 可借款/卖资产后重试
	CodeCardClaimed       Code = "card_already_claimed" // 换一张卡
	CodeCardNotFound      Code = "card_not_found"
	CodeInvalidPhase      Code = "invalid_phase" // 操作时序错误
	CodeNotYourTurn       Code = "not_your_turn"
	CodeTierUnavailable   Code = "tier_unavailable" // 该土地未开放此渠道
	CodeDiceFailure       Code = "dice_failure"     // 掷骰未中，正常流程
	CodeRetryBlocked      Code = "tier_retry_blocked"
	CodeLoanLimit         Code = "loan_limit_exceeded"
	CodeCatastrophe       Code = "catastrophic_loss" // 仅终结当前项目
	CodePrecondition      Code = "precondition_failed"
)

// Outcome 业务操作的判定结果。预期内的失败（资金不足、掷骰失败…）
// 一律以 Outcome 返回，不当作 error 抛出。
type Outcome struct {
	OK      bool   `json:"ok"`
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func Ok() Outcome {
	return Outcome{OK: true, Code: CodeOK}
}

func Fail(code Code, msg string) Outcome {
	return Outcome{OK: false, Code: code, Message: msg}
}
