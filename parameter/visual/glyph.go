package visual

// RampStandard is the 10-glyph brightness ramp, dark to bright
const RampStandard = " .:-=+*#%@"

// RampExtended is the 70-glyph density ramp, dark to bright
const RampExtended = " .'`^\",:;Il!i><~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$"
