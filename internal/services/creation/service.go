package creation

//go:generate mockgen -destination=mock/mock_service.go -package=mockcreation -source=service.go

import (
	"context"
	"sync"

	"github.com/fiveleagues/warband-bot/internal/dice"
	"github.com/fiveleagues/warband-bot/internal/domain/creation"
	"github.com/fiveleagues/warband-bot/internal/domain/warband"
	"github.com/fiveleagues/warband-bot/internal/errors"
	"github.com/fiveleagues/warband-bot/internal/rulebook"
	warbandsvc "github.com/fiveleagues/warband-bot/internal/services/warband"
	"github.com/fiveleagues/warband-bot/internal/uuid"
)

// Service drives character creation wizard sessions. Sessions are held in
// memory only; nothing touches storage until Complete.
type Service interface {
	// StartSession begins a creation session for a warband. Starting a hero
	// is refused when the warband is at its hero capacity. An owner has at
	// most one session at a time; starting a new one replaces it.
	StartSession(ctx context.Context, input *StartSessionInput) (*creation.Session, error)

	// GetSession retrieves an active session
	GetSession(ctx context.Context, sessionID string) (*creation.Session, error)

	// SetName records the character name
	SetName(ctx context.Context, sessionID, name string) (*creation.Session, error)

	// SelectOrigin records the origin choice
	SelectOrigin(ctx context.Context, sessionID string, origin rulebook.Origin) (*creation.Session, error)

	// SelectBackground records the background choice
	SelectBackground(ctx context.Context, sessionID, background string) (*creation.Session, error)

	// Advance moves the session to its next step
	Advance(ctx context.Context, sessionID string) (*creation.Session, error)

	// Back moves the session to its previous step
	Back(ctx context.Context, sessionID string) (*creation.Session, error)

	// RollStep draws a d20 and resolves it against the current step's table
	RollStep(ctx context.Context, sessionID string, step creation.Step) (*creation.Session, *RollOutput, error)

	// RollSkill draws a d100 and resolves it against the skill table
	RollSkill(ctx context.Context, sessionID string) (*creation.Session, *RollOutput, error)

	// ToggleEquipment toggles an item from the selectable catalogs by name
	ToggleEquipment(ctx context.Context, sessionID, itemName string) (*creation.Session, error)

	// Cancel discards a session
	Cancel(ctx context.Context, sessionID string) error

	// Complete assembles the character, appends it to the warband, and
	// discards the session
	Complete(ctx context.Context, sessionID string) (*warband.Character, error)
}

// StartSessionInput contains data for starting a creation session
type StartSessionInput struct {
	OwnerID       string
	WarbandID     string
	CharacterType warband.CharacterType
}

// RollOutput reports a resolved roll back to the caller
type RollOutput struct {
	Roll int
	Text string
}

// service implements the Service interface
type service struct {
	warbandService warbandsvc.Service
	roller         dice.Roller
	uuidGenerator  uuid.Generator

	mu       sync.Mutex
	sessions map[string]*creation.Session
	byOwner  map[string]string
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	WarbandService warbandsvc.Service // Required
	Roller         dice.Roller        // Optional, will use default if nil
	UUIDGenerator  uuid.Generator     // Optional, will use default if nil
}

// NewService creates a new creation service
func NewService(cfg *ServiceConfig) Service {
	if cfg.WarbandService == nil {
		panic("warband service is required")
	}

	svc := &service{
		warbandService: cfg.WarbandService,
		roller:         cfg.Roller,
		uuidGenerator:  cfg.UUIDGenerator,
		sessions:       make(map[string]*creation.Session),
		byOwner:        make(map[string]string),
	}
	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	return svc
}

func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*creation.Session, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.OwnerID == "" || input.WarbandID == "" {
		return nil, errors.InvalidArgument("owner ID and warband ID are required")
	}
	if input.CharacterType != warband.CharacterTypeHero && input.CharacterType != warband.CharacterTypeFollower {
		return nil, errors.InvalidArgumentf("unknown character type: %s", input.CharacterType)
	}

	wb, err := s.warbandService.GetWarband(ctx, input.WarbandID)
	if err != nil {
		return nil, err
	}
	if input.CharacterType == warband.CharacterTypeHero && wb.AtHeroCapacity() {
		return nil, errors.FailedPreconditionf("warband %s is at its hero capacity of %d", wb.Name, wb.MaxHeroes).
			WithMeta("max_heroes", wb.MaxHeroes)
	}

	sess := creation.NewSession(s.uuidGenerator.New(), input.OwnerID, input.WarbandID, input.CharacterType)

	s.mu.Lock()
	defer s.mu.Unlock()
	if oldID, ok := s.byOwner[input.OwnerID]; ok {
		delete(s.sessions, oldID)
	}
	s.sessions[sess.ID] = sess
	s.byOwner[input.OwnerID] = sess.ID
	return sess, nil
}

func (s *service) GetSession(ctx context.Context, sessionID string) (*creation.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(sessionID)
}

func (s *service) getLocked(sessionID string) (*creation.Session, error) {
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, errors.NotFoundf("creation session not found: %s", sessionID)
	}
	return sess, nil
}

func (s *service) SetName(ctx context.Context, sessionID, name string) (*creation.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getLocked(sessionID)
	if err != nil {
		return nil, err
	}
	sess.SetName(name)
	return sess, nil
}

func (s *service) SelectOrigin(ctx context.Context, sessionID string, origin rulebook.Origin) (*creation.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getLocked(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.SelectOrigin(origin); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *service) SelectBackground(ctx context.Context, sessionID, background string) (*creation.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getLocked(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.SelectBackground(background); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *service) Advance(ctx context.Context, sessionID string) (*creation.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getLocked(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.Advance(); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *service) Back(ctx context.Context, sessionID string) (*creation.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getLocked(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.Back(); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *service) RollStep(ctx context.Context, sessionID string, step creation.Step) (*creation.Session, *RollOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getLocked(sessionID)
	if err != nil {
		return nil, nil, err
	}

	roll, err := s.roller.Roll(20)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to roll d20")
	}
	entry, err := sess.ApplyRoll(step, roll)
	if err != nil {
		return nil, nil, err
	}
	return sess, &RollOutput{Roll: roll, Text: entry.Text}, nil
}

func (s *service) RollSkill(ctx context.Context, sessionID string) (*creation.Session, *RollOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getLocked(sessionID)
	if err != nil {
		return nil, nil, err
	}

	roll, err := s.roller.Roll(100)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to roll d100")
	}
	skill, err := sess.RollSkill(roll)
	if err != nil {
		return nil, nil, err
	}
	return sess, &RollOutput{Roll: roll, Text: skill}, nil
}

func (s *service) ToggleEquipment(ctx context.Context, sessionID, itemName string) (*creation.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getLocked(sessionID)
	if err != nil {
		return nil, err
	}

	item, ok := rulebook.EquipmentByName(itemName)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown equipment item: %s", itemName)
	}
	sess.ToggleEquipment(item)
	return sess, nil
}

func (s *service) Cancel(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getLocked(sessionID)
	if err != nil {
		return err
	}
	delete(s.sessions, sessionID)
	delete(s.byOwner, sess.OwnerID)
	return nil
}

func (s *service) Complete(ctx context.Context, sessionID string) (*warband.Character, error) {
	s.mu.Lock()
	sess, err := s.getLocked(sessionID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	if !sess.AllStepsSatisfied() {
		s.mu.Unlock()
		return nil, errors.FailedPrecondition("creation session is incomplete")
	}
	character, err := creation.Assemble(sess, s.uuidGenerator.New())
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Unlock()

	if _, err := s.warbandService.AddCharacter(ctx, sess.WarbandID, character); err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.sessions, sessionID)
	delete(s.byOwner, sess.OwnerID)
	s.mu.Unlock()
	return character, nil
}
