/*
Package config manages configuration parsing and validation for patchline.

	            +-------------+
	            |   Config    |
	            | (Targets)   |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |           |           |
	+-----+-----+ +---+----+ +---+----+
	|   YAML    | |  JSON  | |  HCL   |
	+-----------+ +--------+ +--------+

🎯 Purpose:
- Loads the target files and the patch/show rules applied to them
- Validates configuration values before any file is touched
- Supports YAML, JSON and HCL (format chosen by file extension)

🔄 Flow:
1. Reads configuration from file
2. Parses format-specific syntax
3. Validates configuration values
4. Provides validated config to the operation package

📝 Design Philosophy:
Configuration errors must surface before the first write. A config that
parses but names no target, an empty old-text block, or an invalid glob is
rejected at load time so a bad automated edit never reaches a file.
*/
package config
