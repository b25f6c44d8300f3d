// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

/*
Package metrics provides Prometheus instrumentation.

Metrics are exposed at /metrics in Prometheus text format.

API metrics:
  - api_requests_total: completed requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: in-flight requests (gauge)

Catalog metrics:
  - catalog_products: products currently loaded (gauge)
  - catalog_ingests_total: dataset replacements (counter)

Deck metrics:
  - deck_builds_total, deck_exhaustions_total (counters)
  - deck_swipes_total: committed swipes (counter), label: direction
  - deck_sessions: live sessions (gauge)

Favorites metrics:
  - favorites_entries: current entries (gauge), label: kind
  - favorites_mutations_total (counter), labels: kind, action
  - favorites_migrations_total (counter)
  - favorites_legacy_only_entries (gauge)

Plus websocket connection/message counts, storage error counts, and
app_info/app_uptime_seconds system gauges.
*/
package metrics
