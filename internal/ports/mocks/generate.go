//go:generate mockgen -source=../product_client.go     -destination=./mock_product_client.go     -package=mocks
//go:generate mockgen -source=../product_cache.go      -destination=./mock_product_cache.go      -package=mocks
//go:generate mockgen -source=../product_repository.go -destination=./mock_product_repository.go -package=mocks
//go:generate mockgen -source=../query_dispatcher.go   -destination=./mock_query_dispatcher.go   -package=mocks
//go:generate mockgen -source=../validator.go          -destination=./mock_validator.go          -package=mocks
//go:generate mockgen -source=../logger.go             -destination=./mock_logger.go             -package=mocks
//go:generate mockgen -source=../message_consumer.go   -destination=./mock_message_consumer.go   -package=mocks

package mocks
