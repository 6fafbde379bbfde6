package openshock

import (
	"context"
	"fmt"
	"log/slog"
)

// CommandType identifies the action a command performs on a shocker.
type CommandType string

// Command types accepted by the control endpoint.
const (
	Shock   CommandType = "Shock"
	Vibrate CommandType = "Vibrate"
	Sound   CommandType = "Sound"
	Stop    CommandType = "Stop"
)

// valid reports whether t is one of the four accepted command types.
func (t CommandType) valid() bool {
	switch t {
	case Shock, Vibrate, Sound, Stop:
		return true
	}
	return false
}

// Command defaults and duration bounds, in milliseconds.
const (
	DefaultIntensity  = 1
	DefaultDuration   = 1000
	DefaultCustomName = "go-openshock"

	MinDuration = 300
	MaxDuration = 65535
)

// Command is a single instruction for one shocker. Zero Intensity,
// Duration, and Name are backfilled with the defaults above at dispatch;
// Exclusive must be set explicitly when building a Command by hand (the
// New*Command constructors default it to true).
type Command struct {
	ShockerID string
	Type      CommandType
	Intensity int
	Duration  int
	Name      string
	Exclusive bool
}

// NewCommand creates a command with the documented defaults:
// intensity 1, duration 1000ms, exclusive, named after the library.
//
// Example:
//
//	cmd := openshock.NewCommand("shocker-id", openshock.Vibrate)
//	cmd.Intensity = 40
//	msg, err := client.SendCommand(ctx, cmd)
func NewCommand(shockerID string, typ CommandType) Command {
	return Command{
		ShockerID: shockerID,
		Type:      typ,
		Intensity: DefaultIntensity,
		Duration:  DefaultDuration,
		Name:      DefaultCustomName,
		Exclusive: true,
	}
}

// NewStopCommand creates a command that halts whatever the shocker is
// currently doing.
func NewStopCommand(shockerID string) Command {
	return NewCommand(shockerID, Stop)
}

// controlShock is the wire form of a single command.
type controlShock struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Intensity int    `json:"intensity"`
	Duration  int    `json:"duration"`
	Exclusive bool   `json:"exclusive"`
}

// controlRequest is the control endpoint's request body.
type controlRequest struct {
	Shocks     []controlShock `json:"shocks"`
	CustomName string         `json:"customName"`
}

// SendCommand dispatches a single command and returns the server's
// confirmation message. All validation happens before any network call.
func (c *Client) SendCommand(ctx context.Context, cmd Command) (string, error) {
	return c.SendCommands(ctx, cmd)
}

// SendCommands dispatches a batch of commands in one request. The control
// endpoint accepts one customName per batch; the first command's name is
// used for all of them.
func (c *Client) SendCommands(ctx context.Context, cmds ...Command) (string, error) {
	if len(cmds) == 0 {
		return "", ErrEmptyCommandBatch
	}

	req := controlRequest{
		Shocks:     make([]controlShock, 0, len(cmds)),
		CustomName: DefaultCustomName,
	}

	for i, cmd := range cmds {
		if cmd.ShockerID == "" {
			return "", ErrEmptyShockerID
		}
		if !cmd.Type.valid() {
			return "", fmt.Errorf("%w (got %q)", ErrInvalidCommandType, string(cmd.Type))
		}

		if cmd.Intensity == 0 {
			cmd.Intensity = DefaultIntensity
		}
		if cmd.Duration == 0 {
			cmd.Duration = DefaultDuration
		}
		if cmd.Duration < MinDuration || cmd.Duration > MaxDuration {
			return "", fmt.Errorf("%w (got %d)", ErrInvalidDuration, cmd.Duration)
		}

		if i == 0 && cmd.Name != "" {
			req.CustomName = cmd.Name
		}

		req.Shocks = append(req.Shocks, controlShock{
			ID:        cmd.ShockerID,
			Type:      string(cmd.Type),
			Intensity: cmd.Intensity,
			Duration:  cmd.Duration,
			Exclusive: cmd.Exclusive,
		})
	}

	c.logCommandPayload(ctx, req)

	data, err := c.post(ctx, "/2/shockers/control", req, true)
	if err != nil {
		return "", fmt.Errorf("failed to send command: %w", err)
	}

	msg, err := decodeMessage(data)
	if err != nil {
		return "", fmt.Errorf("failed to send command: %w", err)
	}

	return msg, nil
}

// Stop halts the given shocker. It is shorthand for dispatching
// NewStopCommand with all defaults.
func (c *Client) Stop(ctx context.Context, shockerID string) (string, error) {
	return c.SendCommand(ctx, NewStopCommand(shockerID))
}

// logCommandPayload traces the outgoing control request at debug level.
func (c *Client) logCommandPayload(ctx context.Context, req controlRequest) {
	if c.logger == nil {
		return
	}
	attrs := make([]slog.Attr, 0, len(req.Shocks)+1)
	attrs = append(attrs, slog.String("custom_name", req.CustomName))
	for _, s := range req.Shocks {
		attrs = append(attrs, slog.Group("shock",
			slog.String("id", s.ID),
			slog.String("type", s.Type),
			slog.Int("intensity", s.Intensity),
			slog.Int("duration", s.Duration),
			slog.Bool("exclusive", s.Exclusive),
		))
	}
	c.logger.LogAttrs(ctx, slog.LevelDebug, "control_request", attrs...)
}
