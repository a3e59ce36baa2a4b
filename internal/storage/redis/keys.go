package redis

import (
	"fmt"

	"github.com/mihara/courseflow/internal/model"
)

const keyPrefix = "courseflow"

func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%d", keyPrefix, id)
}

func userKeyPattern() string {
	return keyPrefix + ":user:*"
}

func emailIndexKey(email string) string {
	return fmt.Sprintf("%s:user_email:%s", keyPrefix, email)
}

func sessionKey(token string) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, token)
}

func nextUserIDKey() string {
	return keyPrefix + ":next_user_id"
}
