package config

type (
	InternalConfig struct {
		App        App
		Assessment Assessment
		JWT        JWT
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeoutInSeconds   int
		MaxTimeRequestsPerSeconds  int
		RequestBodyLimitInMegabyte int
	}

	// Assessment groups the knobs of the assessment flow itself.
	Assessment struct {
		SessionTTLInHours            int
		LockTTLInSeconds             int
		EmergencyQueue               string
		EmergencyDLQ                 string
		EmergencyPublishRatePerSec   float64
		ArchiveCollection            string
		ReportBucketName             string
		ReportURLExpiryTimeInHours   int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
)
