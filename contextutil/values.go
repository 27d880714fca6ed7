package contextutil

import "context"

const (
	Command    = "Command"
	Subcommand = "Subcommand"
)

func WithValues(ctx context.Context, command, subcommand string) context.Context {
	return context.WithValue(
		context.WithValue(
			ctx,
			Command,
			command,
		),
		Subcommand,
		subcommand,
	)
}

func ValueString(ctx context.Context, key string) string {
	value, _ := ctx.Value(key).(string) // let it be empty if it wants
	return value
}
