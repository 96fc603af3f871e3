package dto

// ContestResponse is a contest with the caller's registration state.
type ContestResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Registered  bool   `json:"registered"`
}

// RegisterResponse reports the registration outcome; AlreadyRegistered
// marks the soft-failure case.
type RegisterResponse struct {
	ContestID         int64 `json:"contest_id"`
	Registered        bool  `json:"registered"`
	AlreadyRegistered bool  `json:"already_registered"`
}

// QuestionResponse is a contest question without the correct option.
// Answers are scored server-side; the correct index never leaves the server.
type QuestionResponse struct {
	ID       int64    `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// SubmitAnswersRequest maps question id to the chosen option index.
type SubmitAnswersRequest struct {
	Answers map[int64]int `json:"answers" binding:"required"`
}

// SubmitAnswersResponse is the scored result. Boost is the suggested
// progress increment (round(percentage/10)); the client applies it through
// the progress endpoint, which clamps at 100.
type SubmitAnswersResponse struct {
	ContestID  int64 `json:"contest_id"`
	Score      int   `json:"score"`
	Total      int   `json:"total"`
	Percentage int   `json:"percentage"`
	Boost      int   `json:"boost"`
}
