package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/session"
	"ctchen222/tictactoe/pkg/proto"
)

func TestSessionService_ConcurrentMoves(t *testing.T) {
	ctx := context.Background()
	svc := NewSessionService()
	s, err := svc.Create(ctx, &proto.CreateSessionRequest{Mode: "pvp"})
	require.NoError(t, err)

	// Every goroutine races for the same cell; exactly one may win it.
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Move(ctx, s.ID, 1, 1); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, game.ErrCellOccupied)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
	got, err := svc.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, game.PlayerO, got.Next)
}

func TestSessionService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewSessionService(session.WithID("fixed"))

	s, err := svc.Create(ctx, &proto.CreateSessionRequest{Mode: "pvc", Difficulty: "hard"})
	require.NoError(t, err)
	assert.Equal(t, "fixed", s.ID)

	resp, err := svc.Move(ctx, s.ID, 1, 1)
	require.NoError(t, err)
	require.NotNil(t, resp.Turn.Computer)
	assert.Equal(t, game.Position{Row: 0, Col: 0}, resp.Turn.Computer.Position)

	_, err = svc.PlayAgain(ctx, s.ID)
	assert.ErrorIs(t, err, session.ErrRoundInProgress)

	msg, err := svc.NewRound(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, game.None, msg.Board[1][1])

	require.NoError(t, svc.Delete(ctx, s.ID))
	assert.ErrorIs(t, svc.Delete(ctx, s.ID), ErrSessionNotFound)

	_, err = svc.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.ResetTally(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.Decline(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_InvalidConfig(t *testing.T) {
	_, err := NewSessionService().Create(context.Background(), &proto.CreateSessionRequest{Mode: "pvc"})
	assert.ErrorIs(t, err, session.ErrInvalidConfig)
}
