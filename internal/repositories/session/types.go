package session

import "github.com/mfell/agentx/internal/models"

type SaveSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	SessionID string
}

type ListSessionsInput struct {
}

type ListSessionsOutput struct {
	SessionIDs []string
}

type DeleteSessionInput struct {
	SessionID string
}

type SetActiveSessionInput struct {
	SessionID string
}

type GetActiveSessionInput struct {
}

type GetActiveSessionOutput struct {
	SessionID string
}
