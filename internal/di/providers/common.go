package providers

import "time"

// shutdownTimeout bounds how long each component gets during shutdown.
const shutdownTimeout = 10 * time.Second
