//go:generate mockgen -source=../rules_data.go        -destination=./mock_rules_data.go        -package=mocks
//go:generate mockgen -source=../validator.go         -destination=./mock_validator.go         -package=mocks
//go:generate mockgen -source=../report_repository.go -destination=./mock_report_repository.go -package=mocks
//go:generate mockgen -source=../report_cache.go      -destination=./mock_report_cache.go      -package=mocks
//go:generate mockgen -source=../logger.go            -destination=./mock_logger.go            -package=mocks
//go:generate mockgen -source=../message_consumer.go  -destination=./mock_message_consumer.go  -package=mocks
//go:generate mockgen -source=../validation_service.go -destination=mock_validation_service.go -package=mocks

package mocks
