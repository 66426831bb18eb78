package service

import (
	"errors"
)

var (
	ErrSignupFailed        = errors.New("회원가입에 실패했습니다.")
	ErrLoginFailed         = errors.New("로그인에 실패했습니다.")
	ErrServerError         = errors.New("서버 오류가 발생했습니다. 잠시 후 다시 시도해주세요.")
	ErrNetwork             = errors.New("네트워크 오류가 발생했습니다. 인터넷 연결을 확인해주세요.")
	ErrNotAuthenticated    = errors.New("로그인이 필요합니다.")
	ErrPostLoadFailed      = errors.New("게시글을 불러올 수 없습니다.")
	ErrPostWriteFailed     = errors.New("글 작성에 실패했습니다.")
	ErrPostDeleteFailed    = errors.New("삭제에 실패했습니다.")
	ErrCommentEmpty        = errors.New("댓글 내용을 입력하세요.")
	ErrCommentCreateFailed = errors.New("댓글 작성에 실패했습니다.")
	ErrCommentNotFound     = errors.New("댓글을 찾을 수 없습니다.")
	ErrCommentNotOwned     = errors.New("본인이 작성한 댓글만 삭제할 수 있습니다.")
)
