package cmd

// Config carries the process configuration loaded from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// RedisAddr enables the assignment lock when set; empty disables it and
	// the ledger's unique order index alone handles concurrent assignment.
	RedisAddr string

	// GateAssignmentOnAvailability rejects assignment to a busy rider when
	// true. When false a busy rider can carry several orders at once.
	GateAssignmentOnAvailability bool

	// ReconciliationCronSpec schedules the drifted-delivery scan,
	// cron format with seconds field.
	ReconciliationCronSpec string
}
