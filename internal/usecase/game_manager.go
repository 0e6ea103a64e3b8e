package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager runs reducer events against stored games. Transitions are
// applied one at a time.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo

	mu sync.Mutex
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger,
		gameRepo: gameRepo,
	}
}

// NewGame starts a fresh game with an empty board.
func (that *GameManager) NewGame(ctx context.Context) (tictactoe.View, error) {
	game, err := that.createGame(ctx)
	if err != nil {
		return tictactoe.View{}, fmt.Errorf("failed create game: %w", err)
	}

	return tictactoe.NewView(*game), nil
}

// GetOrCreateGame returns the game with id, or a new one when id is empty
// or no longer stored.
func (that *GameManager) GetOrCreateGame(ctx context.Context, id string) (tictactoe.View, error) {
	if id == "" {
		return that.NewGame(ctx)
	}

	game, err := that.gameRepo.GetByID(ctx, id)
	if errors.Is(err, apperror.ErrGameNotFound) {
		that.logger.Info("game not found, creating a new one", "gameID", id)

		return that.NewGame(ctx)
	}

	if err != nil {
		return tictactoe.View{}, fmt.Errorf("failed get game: %w", err)
	}

	return tictactoe.NewView(*game), nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (tictactoe.View, error) {
	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return tictactoe.View{}, err
	}

	return tictactoe.NewView(*game), nil
}

// SelectCell plays the next mark at cell. Occupied cells and decided games
// leave the game unchanged and are not reported as errors.
func (that *GameManager) SelectCell(ctx context.Context, id string, cell int) (tictactoe.View, error) {
	if !entity.IsValidCell(cell) {
		return tictactoe.View{}, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	return that.apply(ctx, id, tictactoe.SelectCell{Cell: cell}, nil)
}

// JumpTo moves the cursor to step.
func (that *GameManager) JumpTo(ctx context.Context, id string, step int) (tictactoe.View, error) {
	return that.apply(ctx, id, tictactoe.JumpTo{Step: step}, func(game *entity.Game) error {
		if !game.HasStep(step) {
			return fmt.Errorf("%w: step %d of %d", apperror.ErrStepOutOfRange, step, game.LastStep())
		}

		return nil
	})
}

// EndGame drops the game from storage.
func (that *GameManager) EndGame(ctx context.Context, id string) error {
	log := that.logger.With("method", "EndGame", "gameID", id)

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	log.Info("game deleted")

	return nil
}

// apply - loads the game, runs check when set, reduces and stores the result.
func (that *GameManager) apply(
	ctx context.Context, id string, event tictactoe.Event, check func(game *entity.Game) error,
) (tictactoe.View, error) {
	log := that.logger.With("method", "apply", "gameID", id)

	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return tictactoe.View{}, err
	}

	if check != nil {
		if err = check(game); err != nil {
			return tictactoe.View{}, err
		}
	}

	next := tictactoe.Reduce(*game, event)
	if !tictactoe.Applied(*game, next) {
		log.Debug("event ignored", "event", fmt.Sprintf("%T", event), "step", game.Step)

		return tictactoe.NewView(next), nil
	}

	if err = that.updateGame(ctx, &next); err != nil {
		return tictactoe.View{}, fmt.Errorf("failed update game: %w", err)
	}

	log.Debug("event applied", "event", fmt.Sprintf("%T", event), "step", next.Step)

	return tictactoe.NewView(next), nil
}

func (that *GameManager) createGame(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(pkg.GenerateGameID())

	if err := that.gameRepo.CreateOrUpdate(ctx, &game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID)

	return &game, nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	existingGame, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return existingGame, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
