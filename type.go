package configfile

// String retrieves the value at path coerced to a string.
// Common scalar types are converted to their string form.
func (c *ConfigFile) String(path string) (string, error) {
	value, err := c.Get(path)
	if err != nil {
		return "", err
	}
	return coerceString(value)
}

// Int64 retrieves the value at path coerced to an int64.
// Numeric types, parsable strings, and booleans are converted; floats
// are truncated.
func (c *ConfigFile) Int64(path string) (int64, error) {
	value, err := c.Get(path)
	if err != nil {
		return 0, err
	}
	return coerceInt64(value)
}

// Float64 retrieves the value at path coerced to a float64.
func (c *ConfigFile) Float64(path string) (float64, error) {
	value, err := c.Get(path)
	if err != nil {
		return 0, err
	}
	return coerceFloat64(value)
}

// Bool retrieves the value at path coerced to a bool.
// Parsable strings and numeric types (0 is false, non-zero is true) are
// converted.
func (c *ConfigFile) Bool(path string) (bool, error) {
	value, err := c.Get(path)
	if err != nil {
		return false, err
	}
	return coerceBool(value)
}
