/*
Package monitoring exposes Prometheus metrics for the voting engine.

Counters cover the domain (votes cast, vote rejections by reason,
elections created) and the HTTP surface (request count and duration per
route pattern). Metrics are served on GET /metrics by the router.
*/
package monitoring
