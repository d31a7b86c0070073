/*
Copyright 2026 The Perkeep Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package tags

// imageTags holds the tags of IFD0 and IFD1 (the thumbnail IFD).
var imageTags = map[ID]Info{
	0x000B: {"ProcessingSoftware", Ascii},
	0x00FE: {"NewSubfileType", Long},
	0x00FF: {"SubfileType", Short},
	0x0100: {"ImageWidth", Long},
	0x0101: {"ImageLength", Long},
	0x0102: {"BitsPerSample", Short},
	0x0103: {"Compression", Short},
	0x0106: {"PhotometricInterpretation", Short},
	0x0107: {"Threshholding", Short},
	0x0108: {"CellWidth", Short},
	0x0109: {"CellLength", Short},
	0x010A: {"FillOrder", Short},
	0x010D: {"DocumentName", Ascii},
	0x010E: {"ImageDescription", Ascii},
	0x010F: {"Make", Ascii},
	0x0110: {"Model", Ascii},
	0x0111: {"StripOffsets", Long},
	0x0112: {"Orientation", Short},
	0x0115: {"SamplesPerPixel", Short},
	0x0116: {"RowsPerStrip", Long},
	0x0117: {"StripByteCounts", Long},
	0x011A: {"XResolution", Rational},
	0x011B: {"YResolution", Rational},
	0x011C: {"PlanarConfiguration", Short},
	0x0122: {"GrayResponseUnit", Short},
	0x0123: {"GrayResponseCurve", Short},
	0x0124: {"T4Options", Long},
	0x0125: {"T6Options", Long},
	0x0128: {"ResolutionUnit", Short},
	0x012D: {"TransferFunction", Short},
	0x0131: {"Software", Ascii},
	0x0132: {"DateTime", Ascii},
	0x013B: {"Artist", Ascii},
	0x013C: {"HostComputer", Ascii},
	0x013D: {"Predictor", Short},
	0x013E: {"WhitePoint", Rational},
	0x013F: {"PrimaryChromaticities", Rational},
	0x0140: {"ColorMap", Short},
	0x0141: {"HalftoneHints", Short},
	0x0142: {"TileWidth", Short},
	0x0143: {"TileLength", Short},
	0x0144: {"TileOffsets", Short},
	0x0145: {"TileByteCounts", Short},
	0x014A: {"SubIFDs", Long},
	0x014C: {"InkSet", Short},
	0x014D: {"InkNames", Ascii},
	0x014E: {"NumberOfInks", Short},
	0x0150: {"DotRange", Byte},
	0x0151: {"TargetPrinter", Ascii},
	0x0152: {"ExtraSamples", Short},
	0x0153: {"SampleFormat", Short},
	0x0154: {"SMinSampleValue", Short},
	0x0155: {"SMaxSampleValue", Short},
	0x0156: {"TransferRange", Short},
	0x0157: {"ClipPath", Byte},
	0x0158: {"XClipPathUnits", Long},
	0x0159: {"YClipPathUnits", Long},
	0x015A: {"Indexed", Short},
	0x015B: {"JPEGTables", Undefined},
	0x015F: {"OPIProxy", Short},
	0x0200: {"JPEGProc", Long},
	0x0201: {"JPEGInterchangeFormat", Long},
	0x0202: {"JPEGInterchangeFormatLength", Long},
	0x0203: {"JPEGRestartInterval", Short},
	0x0205: {"JPEGLosslessPredictors", Short},
	0x0206: {"JPEGPointTransforms", Short},
	0x0207: {"JPEGQTables", Long},
	0x0208: {"JPEGDCTables", Long},
	0x0209: {"JPEGACTables", Long},
	0x0211: {"YCbCrCoefficients", Rational},
	0x0212: {"YCbCrSubSampling", Short},
	0x0213: {"YCbCrPositioning", Short},
	0x0214: {"ReferenceBlackWhite", Rational},
	0x02BC: {"XMLPacket", Byte},
	0x4746: {"Rating", Short},
	0x4749: {"RatingPercent", Short},
	0x800D: {"ImageID", Ascii},
	0x828D: {"CFARepeatPatternDim", Short},
	0x828E: {"CFAPattern", Byte},
	0x828F: {"BatteryLevel", Rational},
	0x8298: {"Copyright", Ascii},
	0x829A: {"ExposureTime", Rational},
	0x8649: {"ImageResources", Byte},
	0x8769: {"ExifTag", Long},
	0x8773: {"InterColorProfile", Undefined},
	0x8825: {"GPSTag", Long},
	0x8829: {"Interlace", Short},
	0x882A: {"TimeZoneOffset", Long},
	0x882B: {"SelfTimerMode", Short},
	0x920B: {"FlashEnergy", Rational},
	0x920C: {"SpatialFrequencyResponse", Undefined},
	0x920D: {"Noise", Undefined},
	0x920E: {"FocalPlaneXResolution", Rational},
	0x920F: {"FocalPlaneYResolution", Rational},
	0x9210: {"FocalPlaneResolutionUnit", Short},
	0x9211: {"ImageNumber", Long},
	0x9212: {"SecurityClassification", Ascii},
	0x9213: {"ImageHistory", Ascii},
	0x9215: {"ExposureIndex", Rational},
	0x9216: {"TIFFEPStandardID", Byte},
	0x9217: {"SensingMethod", Short},
	0x9C9B: {"XPTitle", Byte},
	0x9C9C: {"XPComment", Byte},
	0x9C9D: {"XPAuthor", Byte},
	0x9C9E: {"XPKeywords", Byte},
	0x9C9F: {"XPSubject", Byte},
	0xC4A5: {"PrintImageMatching", Undefined},
	0xC612: {"DNGVersion", Byte},
	0xC613: {"DNGBackwardVersion", Byte},
	0xC614: {"UniqueCameraModel", Ascii},
	0xC615: {"LocalizedCameraModel", Byte},
	0xC616: {"CFAPlaneColor", Byte},
	0xC617: {"CFALayout", Short},
	0xC618: {"LinearizationTable", Short},
	0xC619: {"BlackLevelRepeatDim", Short},
	0xC61A: {"BlackLevel", Rational},
	0xC61B: {"BlackLevelDeltaH", SRational},
	0xC61C: {"BlackLevelDeltaV", SRational},
	0xC61D: {"WhiteLevel", Short},
	0xC61E: {"DefaultScale", Rational},
	0xC61F: {"DefaultCropOrigin", Short},
	0xC620: {"DefaultCropSize", Short},
	0xC621: {"ColorMatrix1", SRational},
	0xC622: {"ColorMatrix2", SRational},
	0xC623: {"CameraCalibration1", SRational},
	0xC624: {"CameraCalibration2", SRational},
	0xC625: {"ReductionMatrix1", SRational},
	0xC626: {"ReductionMatrix2", SRational},
	0xC627: {"AnalogBalance", Rational},
	0xC628: {"AsShotNeutral", Short},
	0xC629: {"AsShotWhiteXY", Rational},
	0xC62A: {"BaselineExposure", SRational},
	0xC62B: {"BaselineNoise", Rational},
	0xC62C: {"BaselineSharpness", Rational},
	0xC62D: {"BayerGreenSplit", Long},
	0xC62E: {"LinearResponseLimit", Rational},
	0xC62F: {"CameraSerialNumber", Ascii},
	0xC630: {"LensInfo", Rational},
	0xC631: {"ChromaBlurRadius", Rational},
	0xC632: {"AntiAliasStrength", Rational},
	0xC633: {"ShadowScale", SRational},
	0xC634: {"DNGPrivateData", Byte},
	0xC635: {"MakerNoteSafety", Short},
	0xC65A: {"CalibrationIlluminant1", Short},
	0xC65B: {"CalibrationIlluminant2", Short},
	0xC65C: {"BestQualityScale", Rational},
	0xC65D: {"RawDataUniqueID", Byte},
	0xC68B: {"OriginalRawFileName", Byte},
	0xC68C: {"OriginalRawFileData", Undefined},
	0xC68D: {"ActiveArea", Short},
	0xC68E: {"MaskedAreas", Short},
	0xC68F: {"AsShotICCProfile", Undefined},
	0xC690: {"AsShotPreProfileMatrix", SRational},
	0xC691: {"CurrentICCProfile", Undefined},
	0xC692: {"CurrentPreProfileMatrix", SRational},
	0xC6BF: {"ColorimetricReference", Short},
	0xC6F3: {"CameraCalibrationSignature", Byte},
	0xC6F4: {"ProfileCalibrationSignature", Byte},
	0xC6F6: {"AsShotProfileName", Byte},
	0xC6F7: {"NoiseReductionApplied", Rational},
	0xC6F8: {"ProfileName", Byte},
	0xC6F9: {"ProfileHueSatMapDims", Long},
	0xC6FA: {"ProfileHueSatMapData1", Float},
	0xC6FB: {"ProfileHueSatMapData2", Float},
	0xC6FC: {"ProfileToneCurve", Float},
	0xC6FD: {"ProfileEmbedPolicy", Long},
	0xC6FE: {"ProfileCopyright", Byte},
	0xC714: {"ForwardMatrix1", SRational},
	0xC715: {"ForwardMatrix2", SRational},
	0xC716: {"PreviewApplicationName", Byte},
	0xC717: {"PreviewApplicationVersion", Byte},
	0xC718: {"PreviewSettingsName", Byte},
	0xC719: {"PreviewSettingsDigest", Byte},
	0xC71A: {"PreviewColorSpace", Long},
	0xC71B: {"PreviewDateTime", Ascii},
	0xC71C: {"RawImageDigest", Undefined},
	0xC71D: {"OriginalRawFileDigest", Undefined},
	0xC71E: {"SubTileBlockSize", Long},
	0xC71F: {"RowInterleaveFactor", Long},
	0xC725: {"ProfileLookTableDims", Long},
	0xC726: {"ProfileLookTableData", Float},
	0xC740: {"OpcodeList1", Undefined},
	0xC741: {"OpcodeList2", Undefined},
	0xC74E: {"OpcodeList3", Undefined},
}

// exifTags holds the tags of the Exif sub-IFD.
var exifTags = map[ID]Info{
	0x829A: {"ExposureTime", Rational},
	0x829D: {"FNumber", Rational},
	0x8822: {"ExposureProgram", Short},
	0x8824: {"SpectralSensitivity", Ascii},
	0x8827: {"ISOSpeedRatings", Short},
	0x8828: {"OECF", Undefined},
	0x8830: {"SensitivityType", Short},
	0x8831: {"StandardOutputSensitivity", Long},
	0x8832: {"RecommendedExposureIndex", Long},
	0x8833: {"ISOSpeed", Long},
	0x8834: {"ISOSpeedLatitudeyyy", Long},
	0x8835: {"ISOSpeedLatitudezzz", Long},
	0x9000: {"ExifVersion", Undefined},
	0x9003: {"DateTimeOriginal", Ascii},
	0x9004: {"DateTimeDigitized", Ascii},
	0x9101: {"ComponentsConfiguration", Undefined},
	0x9102: {"CompressedBitsPerPixel", Rational},
	0x9201: {"ShutterSpeedValue", SRational},
	0x9202: {"ApertureValue", Rational},
	0x9203: {"BrightnessValue", SRational},
	0x9204: {"ExposureBiasValue", SRational},
	0x9205: {"MaxApertureValue", Rational},
	0x9206: {"SubjectDistance", Rational},
	0x9207: {"MeteringMode", Short},
	0x9208: {"LightSource", Short},
	0x9209: {"Flash", Short},
	0x920A: {"FocalLength", Rational},
	0x9214: {"SubjectArea", Short},
	0x927C: {"MakerNote", Undefined},
	0x9286: {"UserComment", Undefined},
	0x9290: {"SubSecTime", Ascii},
	0x9291: {"SubSecTimeOriginal", Ascii},
	0x9292: {"SubSecTimeDigitized", Ascii},
	0xA000: {"FlashpixVersion", Undefined},
	0xA001: {"ColorSpace", Short},
	0xA002: {"PixelXDimension", Long},
	0xA003: {"PixelYDimension", Long},
	0xA004: {"RelatedSoundFile", Ascii},
	0xA005: {"InteroperabilityTag", Long},
	0xA20B: {"FlashEnergy", Rational},
	0xA20C: {"SpatialFrequencyResponse", Undefined},
	0xA20E: {"FocalPlaneXResolution", Rational},
	0xA20F: {"FocalPlaneYResolution", Rational},
	0xA210: {"FocalPlaneResolutionUnit", Short},
	0xA214: {"SubjectLocation", Short},
	0xA215: {"ExposureIndex", Rational},
	0xA217: {"SensingMethod", Short},
	0xA300: {"FileSource", Undefined},
	0xA301: {"SceneType", Undefined},
	0xA302: {"CFAPattern", Undefined},
	0xA401: {"CustomRendered", Short},
	0xA402: {"ExposureMode", Short},
	0xA403: {"WhiteBalance", Short},
	0xA404: {"DigitalZoomRatio", Rational},
	0xA405: {"FocalLengthIn35mmFilm", Short},
	0xA406: {"SceneCaptureType", Short},
	0xA407: {"GainControl", Short},
	0xA408: {"Contrast", Short},
	0xA409: {"Saturation", Short},
	0xA40A: {"Sharpness", Short},
	0xA40B: {"DeviceSettingDescription", Undefined},
	0xA40C: {"SubjectDistanceRange", Short},
	0xA420: {"ImageUniqueID", Ascii},
	0xA430: {"CameraOwnerName", Ascii},
	0xA431: {"BodySerialNumber", Ascii},
	0xA432: {"LensSpecification", Rational},
	0xA433: {"LensMake", Ascii},
	0xA434: {"LensModel", Ascii},
	0xA435: {"LensSerialNumber", Ascii},
	0xA500: {"Gamma", Rational},
}

// gpsTags holds the tags of the GPS sub-IFD.
var gpsTags = map[ID]Info{
	0x0000: {"GPSVersionID", Byte},
	0x0001: {"GPSLatitudeRef", Ascii},
	0x0002: {"GPSLatitude", Rational},
	0x0003: {"GPSLongitudeRef", Ascii},
	0x0004: {"GPSLongitude", Rational},
	0x0005: {"GPSAltitudeRef", Byte},
	0x0006: {"GPSAltitude", Rational},
	0x0007: {"GPSTimeStamp", Rational},
	0x0008: {"GPSSatellites", Ascii},
	0x0009: {"GPSStatus", Ascii},
	0x000A: {"GPSMeasureMode", Ascii},
	0x000B: {"GPSDOP", Rational},
	0x000C: {"GPSSpeedRef", Ascii},
	0x000D: {"GPSSpeed", Rational},
	0x000E: {"GPSTrackRef", Ascii},
	0x000F: {"GPSTrack", Rational},
	0x0010: {"GPSImgDirectionRef", Ascii},
	0x0011: {"GPSImgDirection", Rational},
	0x0012: {"GPSMapDatum", Ascii},
	0x0013: {"GPSDestLatitudeRef", Ascii},
	0x0014: {"GPSDestLatitude", Rational},
	0x0015: {"GPSDestLongitudeRef", Ascii},
	0x0016: {"GPSDestLongitude", Rational},
	0x0017: {"GPSDestBearingRef", Ascii},
	0x0018: {"GPSDestBearing", Rational},
	0x0019: {"GPSDestDistanceRef", Ascii},
	0x001A: {"GPSDestDistance", Rational},
	0x001B: {"GPSProcessingMethod", Undefined},
	0x001C: {"GPSAreaInformation", Undefined},
	0x001D: {"GPSDateStamp", Ascii},
	0x001E: {"GPSDifferential", Short},
	0x001F: {"GPSHPositioningError", Rational},
}

// interopTags holds the tags of the Interoperability sub-IFD.
var interopTags = map[ID]Info{
	0x0001: {"InteroperabilityIndex", Ascii},
}
