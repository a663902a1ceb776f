// Package visualize renders frequency tables as PNG images.
//
// Bar charts (vertical and horizontal) are drawn with gonum/plot; the word
// cloud layout comes from psykhi/wordclouds using the embedded Go font.
// Palettes are small fixed ramps named after the matplotlib colormaps.
package visualize
