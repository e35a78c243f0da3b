/*
Package operation implements the core business logic for patching files and
printing context windows.

	+-------------+
	|  Operation  |
	| (Per Target)|
	+------+------+
	       |
	+------+------+
	|   Runner    |
	| (Sync/Async)|
	+------+------+

🎯 Purpose:
- Orchestrates patch, show and verify runs over configured targets
- Applies glob filters to decide which rules touch which files
- Coordinates async execution across independent targets

🔄 Flow:
1. Receives validated targets from config
2. Applies patch rules (fail fast) or show rules (never fail on no-match)
3. Reports every outcome through the status printer

📝 Design Philosophy:
An operation owns exactly one target file for its whole run. Patching is
fail fast: a missing pattern aborts the target before any write so an
automated edit can never silently no-op or corrupt content. Showing is
side-effect free and treats a missing marker as a normal outcome.
*/
package operation
